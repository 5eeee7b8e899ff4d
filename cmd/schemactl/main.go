// Command schemactl checks endpoint schema files and validates payloads
// against them without starting the server.
package main

import (
	"os"

	"github.com/MKhiriev/go-schema-gate/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	root := newRootCmd(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
	os.Exit(execute(root))
}
