// Command jsonpath evaluates a JSONPath expression against a JSON document
// read from a file or stdin, printing the matched value.
package main

import (
	"fmt"
	"os"
)

func main() {
	var args cliArgs
	var err error

	args, err = parseArgs(os.Args[1:])
	if err != nil {
		printUsage(err)
		os.Exit(2)
	}

	err = run(args, os.Stdin, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "jsonpath: %v\n", err)
		os.Exit(1)
	}
}

func printUsage(cause error) {
	fmt.Fprintf(os.Stderr, `ERROR: %s

Usage: jsonpath -path '<jsonpath expr>' [options] [file]

  -path <expr>        JSONPath expression to evaluate (required unless -keys is given)
  -keys <pattern>     List the document's top-level keys matching a glob pattern, instead of evaluating -path
  -criteria <file>    YAML file of external filters for "[?]" placeholders
  -throw-on-missing   Raise an error instead of returning null for a missing property
  -truthiness         Bare predicate atoms test truthiness instead of existence
  -compact            Print compact JSON instead of pretty-printed
  -gjson              Use the read-only gjson-backed provider instead of the default

If [file] is omitted, the document is read from stdin.
`, cause.Error())
}
