package source

import "io"

// HTMLConverter passes page markup through untouched: the extraction
// strategies read raw HTML directly.
type HTMLConverter struct{}

func (c *HTMLConverter) Convert(r io.Reader, filename string) (string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
