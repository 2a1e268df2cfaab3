package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/mikeschinkel/jsonpath"
	"github.com/mikeschinkel/jsonpath/predicate"
	"github.com/mikeschinkel/jsonpath/provider"
)

// run reads a document (from args.FilePath or stdin), then either lists its
// top-level keys matching args.KeysPattern or evaluates args.Path against
// it, writing the result to stdout.
func run(args cliArgs, stdin io.Reader, stdout io.Writer) (err error) {
	var document []byte
	var filters []predicate.ExternalFilter
	var prov provider.Provider
	var root any
	var cp *jsonpath.CompiledPath
	var value any
	var out []byte
	var opts []jsonpath.ReadOption

	document, err = readDocument(args, stdin)
	if err != nil {
		goto end
	}

	if args.KeysPattern != "" {
		err = runKeys(args, document, stdout)
		goto end
	}

	if args.CriteriaPath != "" {
		filters, err = loadCriteriaFile(args.CriteriaPath)
		if err != nil {
			goto end
		}
	}

	cp, err = jsonpath.Compile(args.Path, filters...)
	if err != nil {
		goto end
	}

	if args.UseGJSONProvider && !cp.IsPathDefinite() {
		err = fmt.Errorf("-gjson only supports definite paths (single keys and indices, no wildcards/scans/slices/predicates); got %q", args.Path)
		goto end
	}

	if args.UseGJSONProvider {
		prov = provider.NewGJSON()
	} else {
		prov = provider.New()
	}
	root, err = prov.Parse(document)
	if err != nil {
		goto end
	}

	opts = append(opts, jsonpath.WithProvider(prov))
	if args.ThrowOnMissing {
		opts = append(opts, jsonpath.WithThrowOnMissingProperty())
	}
	if args.Truthiness {
		opts = append(opts, jsonpath.WithTruthinessPredicates())
	}

	value, err = cp.Read(root, opts...)
	if err != nil {
		goto end
	}
	if value == nil {
		_, err = fmt.Fprintln(stdout, "null")
		goto end
	}

	if args.Compact {
		out, err = prov.Serialize(value)
	} else {
		out, err = jsonpath.Pretty(value, jsonpath.WithProvider(prov))
	}
	if err != nil {
		goto end
	}
	_, err = fmt.Fprintln(stdout, string(out))

end:
	return err
}

// runKeys lists the document's top-level keys matching args.KeysPattern,
// one per line.
func runKeys(args cliArgs, document []byte, stdout io.Writer) (err error) {
	var prov provider.Provider
	var root any
	var keys []string

	if args.UseGJSONProvider {
		prov = provider.NewGJSON()
	} else {
		prov = provider.New()
	}

	root, err = prov.Parse(document)
	if err != nil {
		return err
	}

	keys, err = prov.Keys(root)
	if err != nil {
		return err
	}

	matched := jsonpath.MatchKeys(keys, args.KeysPattern)
	_, err = fmt.Fprintln(stdout, strings.Join(matched, "\n"))
	return err
}

func readDocument(args cliArgs, stdin io.Reader) (document []byte, err error) {
	if args.FilePath != "" {
		document, err = os.ReadFile(args.FilePath)
		return document, err
	}

	if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		err = fmt.Errorf("no input file given and stdin is a terminal; pipe a JSON document or pass a file path")
		return document, err
	}

	document, err = io.ReadAll(stdin)
	return document, err
}
