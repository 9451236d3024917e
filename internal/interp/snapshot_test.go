package interp

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

// TestEndToEndScenarioSnapshots runs a handful of representative scripts
// end to end and snapshots their print output and final environment
// rendering, the way the teacher's fixture suite snapshots a script's
// combined output.
func TestEndToEndScenarioSnapshots(t *testing.T) {
	scenarios := []struct {
		name   string
		source string
	}{
		{
			name: "arithmetic_precedence",
			source: `let n: i32 = 2 + 3 * 4 - 1;
print(n);`,
		},
		{
			name: "string_concat",
			source: `let s: str = "foo" + "bar";
print(s);`,
		},
		{
			name: "while_loop_count",
			source: `let i: i32 = 0;
let count: i32 = 0;
while i < 5 {
	count = count + 1;
	i = i + 1;
}
print(count);`,
		},
		{
			name: "comparison_booleans",
			source: `let ok: bool = (3 < 5) && (5 == 5);
print(ok);`,
		},
		{
			name: "modulo_precedence",
			source: `let r: i32 = 10 % 3 + 1;
print(r);`,
		},
	}

	for _, sc := range scenarios {
		t.Run(sc.name, func(t *testing.T) {
			it, out, err := run(t, sc.source)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			snaps.MatchSnapshot(t, sc.name+"_output", out.String())

			var rendered string
			for _, b := range it.Env.Snapshot() {
				rendered += b.Name + "=" + b.Value.String() + "\n"
			}
			snaps.MatchSnapshot(t, sc.name+"_env", rendered)
		})
	}
}
