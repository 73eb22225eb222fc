// Package testutil defines support code for unit tests.
package testutil

// Blueprints is a sample blueprints document, in the shape consumed by the
// profitability calculator. It includes comments of both kinds.
const Blueprints = `// Blueprints to evaluate.
{
    /* Each entry names an output item and its inputs. */
    "blueprints": [
        {
            "name": "Rifter",
            "availability": "tech 1",     // buildable from stock
            "runs": 10,
            "output quantity": 1,
            "efficiency": 0.9,
            "input materials": ["Tritanium", "Pyerite", "Mexallon"],
            "input quantities": [28000, 6000, 2500]
        },
        {
            "name": "Antimatter Charge S",
            "availability": "tech 1",
            "runs": 1,
            "output quantity": 100,
            "efficiency": 1.0e0,
            "input materials": ["Tritanium", "Nocxium"],
            "input quantities": [240, 1]
        }
    ],
    "station": "Jita IV - Moon 4 // Caldari Navy Assembly Plant",
    "broker fee": -2.5e-2,
    "taxed": true
}
`

// Plain is a small document without comments, useful for round trips.
const Plain = `{"list":[{"x":1},{"x":2}],"y":{"hello":"there"},"o":["hi","yourself"],"xyz":{"p":true,"d":true,"q":false}}`
