package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mikeschinkel/jsonpath/predicate"
)

// criteriaFile is the on-disk shape a -criteria YAML file is decoded into:
// one Filter (a conjunction of criteria) per "[?]" placeholder in the
// path, in left-to-right order.
type criteriaFile struct {
	Filters []criteriaFilterDoc `yaml:"filters"`
}

type criteriaFilterDoc struct {
	Criteria []criterionDoc `yaml:"criteria"`
}

type criterionDoc struct {
	Key    string     `yaml:"key"`
	Checks []checkDoc `yaml:"checks"`
}

type checkDoc struct {
	Op    string `yaml:"op"`
	Value string `yaml:"value"`
}

// loadCriteriaFile reads and decodes a YAML criteria file into one
// predicate.ExternalFilter per "[?]" placeholder, for paths that need
// externally supplied filters rather than inline "[?(...)]" expressions.
func loadCriteriaFile(path string) (filters []predicate.ExternalFilter, err error) {
	var raw []byte
	var doc criteriaFile

	raw, err = os.ReadFile(path)
	if err != nil {
		goto end
	}

	err = yaml.Unmarshal(raw, &doc)
	if err != nil {
		goto end
	}

	for _, filterDoc := range doc.Filters {
		var criteria []predicate.Criterion
		for _, critDoc := range filterDoc.Criteria {
			var checks []predicate.Check
			for _, c := range critDoc.Checks {
				var lit predicate.Literal
				lit, err = predicate.ParseLiteral(c.Value)
				if err != nil {
					err = fmt.Errorf("criteria file %s: key %q: %w", path, critDoc.Key, err)
					goto end
				}
				checks = append(checks, predicate.Check{Op: predicate.Comparator(c.Op), Expected: lit})
			}
			criteria = append(criteria, predicate.NewCriterion(critDoc.Key, checks...))
		}
		filters = append(filters, predicate.NewFilter(criteria...))
	}

end:
	return filters, err
}
