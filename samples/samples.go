// Package samples holds small example documents in block and JSON form.
package samples

import (
	"errors"
	"fmt"
	"slices"

	"github.com/dehok/blockconv/format"
)

var ErrNoSample = errors.New("no such sample")

type sample struct {
	block string
	json  string
}

var samples = map[string]sample{
	"config": {
		block: `name: demo
version: 1.2
debug: false
features:
  - fast
  - free
database:
  host: localhost
  port: 5432
  user: null
`,
		json: `{
  "name": "demo",
  "version": 1.2,
  "debug": false,
  "features": [
    "fast",
    "free"
  ],
  "database": {
    "host": "localhost",
    "port": 5432,
    "user": null
  }
}
`,
	},
	"list": {
		block: `- name: web
  replicas: 3
  ports:
    - 80
    - 443
- name: worker
  replicas: 1
  ports: []
`,
		json: `[
  {
    "name": "web",
    "replicas": 3,
    "ports": [
      80,
      443
    ]
  },
  {
    "name": "worker",
    "replicas": 1,
    "ports": []
  }
]
`,
	},
	"nested": {
		block: `service:
  http:
    listen:
      host: 0.0.0.0
      port: 8080
    timeouts:
      read: 5
      write: 10
  tags: {}
  matrix:
    - - 1
      - 0
    - - 0
      - 1
`,
		json: `{
  "service": {
    "http": {
      "listen": {
        "host": "0.0.0.0",
        "port": 8080
      },
      "timeouts": {
        "read": 5,
        "write": 10
      }
    },
    "tags": {},
    "matrix": [
      [
        1,
        0
      ],
      [
        0,
        1
      ]
    ]
  }
}
`,
	},
}

// Names returns the sample names in sorted order.
func Names() []string {
	res := make([]string, 0, len(samples))
	for name := range samples {
		res = append(res, name)
	}
	slices.Sort(res)
	return res
}

// Get returns the text of sample name in block or JSON format.
func Get(name string, f format.Format) (string, error) {
	s, ok := samples[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrNoSample, name)
	}
	switch f {
	case format.BlockFormat:
		return s.block, nil
	case format.JSONFormat:
		return s.json, nil
	}
	return "", fmt.Errorf("%w: sample %q is not available as %s", format.ErrBadFormat, name, f)
}
