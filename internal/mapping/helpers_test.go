package mapping

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const orderMapping = `
source:
  headers:
    - {id: sh1, name: traceId, type: {name: string}}
  body:
    name: object
    schema:
      attributes:
        - id: s1
          name: customerName
          type: {name: string}
        - id: s2
          name: total
          type: {name: number}
target:
  headers:
    - {id: th1, name: correlationId, required: true, type: {name: string}}
  body:
    name: object
    definitions:
      - id: money
        type:
          name: object
          schema:
            attributes:
              - {id: amount, name: amount, required: true, type: {name: number}}
              - {id: currency, name: currency, type: {name: string}}
    schema:
      attributes:
        - id: t1
          name: name
          required: true
          type: {name: string}
        - id: t2
          name: price
          type: {name: reference, definitionId: money}
constants:
  - id: c1
    name: currency
    valueSupplier: {kind: given, value: EUR}
actions:
  - id: a1
    sources: [header.sh1]
    target: header.th1
  - id: a2
    sources:
      - {type: attribute, kind: body, path: [s1]}
    target: {kind: body, path: [t1]}
  - id: a3
    sources: body.s2
    target: body.t2.amount
    transformation:
      name: expression
      parameters: ["body.total * 100"]
  - sources: [constant.currency]
    target: body.t2.currency
`

func mustParse(t *testing.T, src string) *Description {
	t.Helper()

	d, err := Parse([]byte(src))
	require.NoError(t, err)

	return d
}
