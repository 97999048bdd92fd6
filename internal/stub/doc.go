// Package stub serves an in-memory Synergos TTP over HTTP.
//
// It implements the connect, train and evaluate endpoints with the TTP's
// response envelope so the CLI and driver can be exercised without a grid.
// Creating a record whose parent does not exist answers 404, creating a
// record twice answers 409 and a successful create answers 201. Training
// and evaluation records are generated per run in scope; no model is ever
// trained.
package stub
