package lives

import "testing"

func TestOperators(t *testing.T) {
	ops := NewOperators("Steve", " alex ", "")

	for _, name := range []string{"steve", "STEVE", "Alex"} {
		if !ops.Contains(name) {
			t.Fatalf("%q is not an operator", name)
		}
	}
	if ops.Contains("") || ops.Contains("Herobrine") {
		t.Fatal("unexpected operator")
	}

	ops.Add("Herobrine")
	if !ops.Contains("herobrine") {
		t.Fatal("added operator not found")
	}
}
