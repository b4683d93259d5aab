package domain

// Config is the resolved query + file path pair driving one search run.
type Config struct {
	// Query is the substring to search for.
	Query Query

	// Filename is the path of the file to search.
	Filename string
}

// NewConfig builds a Config from raw argument tokens, where token 0 is the
// program name, token 1 the query and token 2 the filename. Extra tokens
// are ignored. Neither the query nor the file is validated here.
func NewConfig(args []string) (Config, error) {
	if len(args) < 3 {
		return Config{}, ErrNotEnoughArguments
	}
	return Config{
		Query:    Query(args[1]),
		Filename: args[2],
	}, nil
}
