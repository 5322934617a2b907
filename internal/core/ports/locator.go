package ports

// Locator resolves interpreter names against the search path.
//
//go:generate mockgen -source=locator.go -destination=mocks/mock_locator.go -package=mocks
type Locator interface {
	// LookPath returns the executable path for program or an error if it is not installed.
	LookPath(program string) (string, error)
}
