package xlite

// Metadata describes where a log call originated. It is only populated in
// builds with the xlite_meta tag; see Payload.Meta.
type Metadata struct {
	// ModulePath is the import path of the package that made the call.
	ModulePath string
	File       string
	Line       int
}
