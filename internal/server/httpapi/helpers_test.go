package httpapi

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/steinfletcher/apitest"
)

// bodyContains asserts that the raw response body contains s.
func bodyContains(s string) apitest.Assert {
	return func(res *http.Response, _ *http.Request) error {
		b, err := io.ReadAll(res.Body)
		if err != nil {
			return err
		}
		if !strings.Contains(string(b), s) {
			return fmt.Errorf("body does not contain %q", s)
		}
		return nil
	}
}

// bodyExcludes asserts that the raw response body does not contain s.
func bodyExcludes(s string) apitest.Assert {
	return func(res *http.Response, _ *http.Request) error {
		b, err := io.ReadAll(res.Body)
		if err != nil {
			return err
		}
		if strings.Contains(string(b), s) {
			return fmt.Errorf("body unexpectedly contains %q", s)
		}
		return nil
	}
}
