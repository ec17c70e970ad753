// program_fixture_test.go — YAML-driven end-to-end programs.
package paneerlang

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/nalgeon/be"
	"gopkg.in/yaml.v3"
)

type fixtureCase struct {
	Name   string `yaml:"name"`
	Source string `yaml:"source"`
	Output string `yaml:"output"`
	Error  string `yaml:"error"`
}

type fixtureFile struct {
	Cases []fixtureCase `yaml:"cases"`
}

func Test_Programs_Fixtures(t *testing.T) {
	data, err := os.ReadFile("testdata/programs.yaml")
	be.Err(t, err, nil)

	var file fixtureFile
	be.Err(t, yaml.Unmarshal(data, &file), nil)
	be.True(t, len(file.Cases) > 0)

	for _, c := range file.Cases {
		t.Run(c.Name, func(t *testing.T) {
			var out bytes.Buffer
			ip := NewInterpreter()
			ip.Out = &out
			err := ip.RunSource(c.Source)

			if c.Error == "" {
				be.Err(t, err, nil)
				be.Equal(t, out.String(), c.Output)
				return
			}

			switch c.Error {
			case "lex":
				var lexErr *LexError
				be.True(t, errors.As(err, &lexErr))
			case "parse":
				var parseErr *ParseError
				be.True(t, errors.As(err, &parseErr))
			default:
				var rtErr *RuntimeError
				if !errors.As(err, &rtErr) {
					t.Fatalf("want *RuntimeError, got %v", err)
				}
				be.Equal(t, rtErr.Kind.String(), c.Error)
			}
		})
	}
}
