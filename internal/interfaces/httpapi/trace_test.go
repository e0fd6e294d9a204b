package httpapi

import "testing"

func TestShouldCreateHTTPAPISpan(t *testing.T) {
	spanNames := map[string]bool{
		"httpapi.Handler.ListTitles":      true,
		"httpapi.Handler.AssignTitle":     true,
		"httpapi.RequestLogging":          false,
		"httpapi.writeError":              false,
		"usecase.TitleService.ListTitles": false,
	}

	for name, want := range spanNames {
		if got := shouldCreateHTTPAPISpan(name); got != want {
			t.Errorf("shouldCreateHTTPAPISpan(%q)=%v want=%v", name, got, want)
		}
	}
}
