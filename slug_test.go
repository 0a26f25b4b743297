package folio

import "testing"

func TestSlugifyScenarios(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"My First Post!", "my-first-post"},
		{"Hello, World!", "hello-world"},
		{"  leading and   trailing  ", "leading-and-trailing"},
		{"already-a-slug", "already-a-slug"},
		{"Dots.and/Slashes\\everywhere", "dotsandslasheseverywhere"},
		{"MiXeD CaSe 123", "mixed-case-123"},
		{"--- just hyphens ---", "just-hyphens"},
		{"!!!", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if got := Slugify(tc.title); got != tc.want {
			t.Errorf("Slugify(%q) = %q, want %q", tc.title, got, tc.want)
		}
	}
}

func TestSlugifyShape(t *testing.T) {
	titles := []string{
		"My First Post!",
		"a  b   c",
		"Ünïcödé Dashes — and em",
		"trailing punctuation...",
		"-starts-with-hyphen",
		"ends with hyphen-",
		"UPPER  --  lower",
	}
	for _, title := range titles {
		got := Slugify(title)
		if got == "" {
			continue
		}
		if !IsValidSlug(got) {
			t.Errorf("Slugify(%q) = %q, not a valid slug", title, got)
		}
	}
}

func TestIsValidSlug(t *testing.T) {
	valid := []string{"a1b", "my-first-post", "x0", "a"}
	for _, s := range valid {
		if !IsValidSlug(s) {
			t.Errorf("IsValidSlug(%q) = false, want true", s)
		}
	}
	invalid := []string{"", "-lead", "trail-", "dou--ble", "Has-Upper", "with space", "dot.dot"}
	for _, s := range invalid {
		if IsValidSlug(s) {
			t.Errorf("IsValidSlug(%q) = true, want false", s)
		}
	}
}

func TestSlugTrackerFollowsTitle(t *testing.T) {
	tr := NewSlugTracker("", SlugUntouched)
	tr.TitleChanged("My First Post!")
	if tr.Slug() != "my-first-post" {
		t.Fatalf("slug = %q, want %q", tr.Slug(), "my-first-post")
	}
	if tr.Mode() != SlugAuto {
		t.Fatalf("mode = %v, want auto", tr.Mode())
	}
	tr.TitleChanged("Second Title")
	if tr.Slug() != "second-title" {
		t.Fatalf("slug = %q, want %q", tr.Slug(), "second-title")
	}
}

func TestSlugTrackerManualLatchIsOneWay(t *testing.T) {
	tr := NewSlugTracker("", SlugUntouched)
	tr.TitleChanged("Original Title")
	tr.SlugEdited("my-own-slug")
	if tr.Mode() != SlugManual {
		t.Fatalf("mode = %v, want manual", tr.Mode())
	}

	// Title changes after a manual edit never touch the slug again.
	tr.TitleChanged("A Completely New Title")
	tr.TitleChanged("And Another One")
	if tr.Slug() != "my-own-slug" {
		t.Fatalf("slug = %q, want manual choice preserved", tr.Slug())
	}
	if tr.Mode() != SlugManual {
		t.Fatalf("mode = %v, want manual to stick", tr.Mode())
	}
}

func TestParseSlugMode(t *testing.T) {
	if ParseSlugMode("manual") != SlugManual {
		t.Error("expected manual")
	}
	if ParseSlugMode("auto") != SlugAuto {
		t.Error("expected auto")
	}
	if ParseSlugMode("") != SlugUntouched {
		t.Error("expected untouched for empty value")
	}
	if ParseSlugMode("garbage") != SlugUntouched {
		t.Error("expected untouched for unknown value")
	}
}
