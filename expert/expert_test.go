package expert_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/stext"
	"github.com/npillmayer/stext/expert"
	"golang.org/x/text/language"
)

// Conversion degenerates to the identity for non-bidi user locales, so the
// tests pin a Hebrew locale instead of relying on the machine's settings.
func hebrewEnv(orient stext.Orientation) *stext.Environment {
	return &stext.Environment{Locale: language.Hebrew, Orientation: orient}
}

func ExampleExpert_LeanToFullText() {
	proc := stext.NewBaseProcessor(".")
	e := expert.New(proc, expert.WithEnvironment(
		&stext.Environment{Locale: language.Hebrew}))
	full := e.LeanToFullText("abc.עברית.עברית.xyz")
	fmt.Printf("%q\n", full)
	// Output: "abc.עברית\u200e.עברית.xyz"
}

func TestSeparatorOnlyGrammar(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	e := expert.New(stext.NewBaseProcessor("."), expert.WithEnvironment(hebrewEnv(stext.OrientLTR)))
	lean := "abc.עברית.עברית.xyz"
	full := e.LeanToFullText(lean)
	t.Logf("full text = %q", full)
	// of the three separators only the one between the two Hebrew tokens
	// needs a mark
	if want := "abc.עברית‎.עברית.xyz"; full != want {
		t.Errorf("expected full text %q, have %q", want, full)
	}
	if n := strings.Count(full, string(stext.LRM)); n != 1 {
		t.Errorf("expected exactly 1 LRM, have %d", n)
	}
}

func TestRoundTrip(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	texts := []string{
		"",
		"abc",
		"עברית",
		"abc.עברית.עברית.xyz",
		"עברית.עברית.עברית",
		"a/b:עברית/ערבית.go",
		"12.עברית.34",
	}
	procs := []stext.Processor{
		stext.NewBaseProcessor("."),
		stext.NewBaseProcessor("/:."),
		stext.NewBaseProcessor(""),
	}
	orients := []stext.Orientation{
		stext.OrientLTR, stext.OrientRTL, stext.OrientUnknown,
		stext.OrientContextualLTR, stext.OrientContextualRTL, stext.OrientIgnore,
	}
	for _, proc := range procs {
		for _, orient := range orients {
			e := expert.New(proc, expert.WithEnvironment(hebrewEnv(orient)))
			for _, lean := range texts {
				full := e.LeanToFullText(lean)
				back := e.FullToLeanText(full)
				if back != lean {
					t.Errorf("round trip of %q failed: full %q, back %q", lean, full, back)
				}
			}
		}
	}
}

func TestMarkOffsetsMonotone(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	e := expert.New(stext.NewBaseProcessor("./:"), expert.WithEnvironment(hebrewEnv(stext.OrientLTR)))
	texts := []string{
		"abc.עברית.עברית.xyz",
		"עברית/עברית/עברית",
		"עברית.123:עברית",
	}
	for _, lean := range texts {
		offsets := e.LeanBidiCharOffsets(lean)
		t.Logf("%q: mark offsets %v", lean, offsets)
		length := len([]rune(lean))
		prev := -1
		for _, offset := range offsets {
			if offset <= prev {
				t.Errorf("%q: offsets not strictly ascending: %v", lean, offsets)
			}
			if offset < 0 || offset > length {
				t.Errorf("%q: offset %d outside of [0, %d]", lean, offset, length)
			}
			prev = offset
		}
	}
}

// skipProc is a grammar which declines processing for texts starting with
// '#', like a comment-only line.
type skipProc struct {
	stext.BaseProcessor
}

func (p skipProc) SkipProcessing(ctx *stext.Context) bool {
	return ctx.Len() > 0 && ctx.Rune(0) == '#'
}

func TestSkipProcessing(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	proc := skipProc{stext.NewBaseProcessor(".")}
	e := expert.New(proc, expert.WithEnvironment(hebrewEnv(stext.OrientUnknown)))
	lean := "#עברית.עברית"
	if full := e.LeanToFullText(lean); full != lean {
		t.Errorf("expected skipped text to pass through unchanged, have %q", full)
	}
	// without the skip the same text does get amended
	e = expert.New(stext.NewBaseProcessor("."), expert.WithEnvironment(hebrewEnv(stext.OrientUnknown)))
	if full := e.LeanToFullText(lean); full == lean {
		t.Error("expected unskipped text to be amended")
	}
}

// rtlProc is a grammar with base direction RTL.
type rtlProc struct {
	stext.BaseProcessor
}

func (p rtlProc) Direction(ctx *stext.Context) stext.Direction {
	return stext.RTL
}

func TestDirectionSelectsMarkKind(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	// base direction LTR inserts LRM
	e := expert.New(stext.NewBaseProcessor("."), expert.WithEnvironment(hebrewEnv(stext.OrientLTR)))
	full := e.LeanToFullText("עברית.עברית")
	if !strings.ContainsRune(full, stext.LRM) || strings.ContainsRune(full, stext.RLM) {
		t.Errorf("expected LRM marks for base direction LTR, full text %q", full)
	}
	// base direction RTL inserts RLM
	e = expert.New(rtlProc{stext.NewBaseProcessor(".")}, expert.WithEnvironment(hebrewEnv(stext.OrientRTL)))
	full = e.LeanToFullText("abc.123")
	if !strings.ContainsRune(full, stext.RLM) || strings.ContainsRune(full, stext.LRM) {
		t.Errorf("expected RLM marks for base direction RTL, full text %q", full)
	}
}

func TestOrientationFraming(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	proc := stext.NewBaseProcessor(".") // base direction LTR
	tests := []struct {
		orient stext.Orientation
		lean   string
		prefix string
		suffix string
	}{
		{stext.OrientLTR, "עברית", "", ""},                               // orientation matches direction
		{stext.OrientRTL, "עברית", string(stext.LRE), string(stext.PDF)}, // orientation opposes direction
		{stext.OrientUnknown, "עברית", string(stext.LRE), string(stext.PDF)},
		{stext.OrientIgnore, "עברית", "", ""},
		{stext.OrientContextualLTR, "abc", "", ""},                  // component will guess LTR anyway
		{stext.OrientContextualLTR, "עברית", string(stext.LRM), ""}, // component would guess RTL
		{stext.OrientContextualRTL, "עברית", string(stext.LRM), ""},
		{stext.OrientContextualRTL, "...", string(stext.LRM), ""}, // no strong character, default RTL
		{stext.OrientContextualLTR, "...", "", ""},                // no strong character, default LTR
	}
	for _, test := range tests {
		e := expert.New(proc, expert.WithEnvironment(hebrewEnv(test.orient)))
		full := e.LeanToFullText(test.lean)
		t.Logf("orientation %v, lean %q: full %q", test.orient, test.lean, full)
		if !strings.HasPrefix(full, test.prefix) {
			t.Errorf("orientation %v: expected prefix %q in %q", test.orient, test.prefix, full)
		}
		if !strings.HasSuffix(full, test.suffix) {
			t.Errorf("orientation %v: expected suffix %q in %q", test.orient, test.suffix, full)
		}
		if test.prefix == "" && len(full) > 0 && stext.IsMark([]rune(full)[0]) {
			t.Errorf("orientation %v: expected no frame, full %q", test.orient, full)
		}
	}
}

func TestLeanToFullMap(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	e := expert.New(stext.NewBaseProcessor("."), expert.WithEnvironment(hebrewEnv(stext.OrientLTR)))
	lean := "עברית.עברית" // a mark gets inserted before the separator
	m := e.LeanToFullMap(lean)
	want := []int{0, 1, 2, 3, 4, 6, 7, 8, 9, 10, 11}
	if len(m) != len(want) {
		t.Fatalf("expected map of length %d, have %d", len(want), len(m))
	}
	for i := range want {
		if m[i] != want[i] {
			t.Errorf("expected lean position %d to map to %d, maps to %d", i, want[i], m[i])
		}
	}
}

func TestFullToLeanMap(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	e := expert.New(stext.NewBaseProcessor("."), expert.WithEnvironment(hebrewEnv(stext.OrientLTR)))
	full := e.LeanToFullText("עברית.עברית")
	m := e.FullToLeanMap(full)
	want := []int{0, 1, 2, 3, 4, -1, 5, 6, 7, 8, 9, 10}
	if len(m) != len(want) {
		t.Fatalf("expected map of length %d, have %d", len(want), len(m))
	}
	for i := range want {
		if m[i] != want[i] {
			t.Errorf("expected full position %d to map to %d, maps to %d", i, want[i], m[i])
		}
	}
}

func TestLeanBidiCharOffsets(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	e := expert.New(stext.NewBaseProcessor("."), expert.WithEnvironment(hebrewEnv(stext.OrientLTR)))
	offsets := e.LeanBidiCharOffsets("עברית.עברית")
	if len(offsets) != 1 || offsets[0] != 5 {
		t.Errorf("expected mark offsets [5], have %v", offsets)
	}
}

func TestNonBidiLocalePassesThrough(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	env := &stext.Environment{Locale: language.English, Orientation: stext.OrientLTR}
	e := expert.New(stext.NewBaseProcessor("."), expert.WithEnvironment(env))
	lean := "עברית.עברית"
	if full := e.LeanToFullText(lean); full != lean {
		t.Errorf("expected pass-through under non-bidi locale, have %q", full)
	}
}

// countingProc records probe calls; with a specials count of zero the
// engine must never issue any.
type countingProc struct {
	stext.BaseProcessor
	probes *int
}

func (p countingProc) IndexOfSpecial(ctx *stext.Context, caseNumber, fromIndex int) int {
	*p.probes++
	return -1
}

func (p countingProc) ProcessSpecial(ctx *stext.Context, caseNumber, separLocation int) int {
	*p.probes++
	return ctx.Len()
}

func TestZeroSpecialsCallbacksNeverInvoked(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	probes := 0
	proc := countingProc{stext.NewBaseProcessor("."), &probes}
	e := expert.New(proc, expert.WithEnvironment(hebrewEnv(stext.OrientLTR)))
	e.LeanToFullText("abc.עברית.עברית")
	if probes != 0 {
		t.Errorf("expected no special-case callbacks for specials count 0, have %d", probes)
	}
}
