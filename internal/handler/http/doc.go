// Package http implements the HTTP transport of the schema gate.
//
// Every endpoint of the loaded schema is served as POST /<endpoint>. The
// raw body goes to the gate service; an accepted payload gets 200 with
// {"status":"accepted"}, a rejected one 400 and a broken schema 500, both
// with a models.ErrorResponse body. Tracing, access logging and gzip are
// handled by middleware in this package.
package http
