package i18n

import "testing"

func TestGetCatalogMatchesLooseLocales(t *testing.T) {
	tests := []struct {
		requested string
		want      string
	}{
		{"en-US", "en-US"},
		{"en", "en-US"},
		{"ru-RU", "ru-RU"},
		{"ru", "ru-RU"},
		{"", "en-US"},
		{"pt-BR", "en-US"},
		{"garbage!!", "en-US"},
	}
	for _, tc := range tests {
		if got := GetCatalog(tc.requested).Locale(); got != tc.want {
			t.Fatalf("%q: got %s, want %s", tc.requested, got, tc.want)
		}
	}
}

func TestFormatRendersMetadata(t *testing.T) {
	got := GetCatalog("en-US").Format(UICatalogPage, map[string]string{
		"Page":  "2",
		"Total": "7",
	})
	if got != "Page 2 of 7" {
		t.Fatalf("got %q", got)
	}
}

func TestFormatUnknownCodeReturnsCode(t *testing.T) {
	if got := GetCatalog("en-US").Format("NO_SUCH_CODE", nil); got != "NO_SUCH_CODE" {
		t.Fatalf("got %q", got)
	}
}

func TestRussianCatalogCoversEnglishKeys(t *testing.T) {
	for code := range enUSCatalog.messages {
		if _, ok := ruRUCatalog.messages[code]; !ok {
			t.Fatalf("ru-RU catalog is missing %s", code)
		}
	}
}
