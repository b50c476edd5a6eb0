package textcompress

import (
	"sort"
	"testing"
)

func TestCode_String(t *testing.T) {
	type testRow struct {
		code   Code
		digits string
		str    string
	}

	testData := [...]testRow{
		{code: MakeCode(0, 0), digits: "", str: `""`},
		{code: MakeCode(1, 0), digits: "0", str: `"0"`},
		{code: MakeCode(3, 1), digits: "001", str: `"001"`},
		{code: MakeCode(4, 0xc), digits: "1100", str: `"1100"`},
	}
	for _, row := range testData {
		if actual := row.code.Digits(); actual != row.digits {
			t.Errorf("Digits: expected %q, got %q", row.digits, actual)
		}
		if actual := row.code.String(); actual != row.str {
			t.Errorf("String: expected %s, got %s", row.str, actual)
		}
	}
}

func TestCode_Append(t *testing.T) {
	var hc Code
	for _, bit := range []uint{1, 0, 1, 1} {
		hc = hc.Append(bit)
	}
	if expect := MakeCode(4, 0xb); hc != expect {
		t.Errorf("expected %s, got %s", expect, hc)
	}
}

func TestCode_HasPrefix(t *testing.T) {
	hc := MakeCode(4, 0xb) // "1011"
	yes := []Code{MakeCode(0, 0), MakeCode(1, 1), MakeCode(2, 2), MakeCode(3, 5), hc}
	no := []Code{MakeCode(1, 0), MakeCode(2, 3), MakeCode(5, 0x16)}
	for _, prefix := range yes {
		if !hc.HasPrefix(prefix) {
			t.Errorf("expected %s to have prefix %s", hc, prefix)
		}
	}
	for _, prefix := range no {
		if hc.HasPrefix(prefix) {
			t.Errorf("expected %s not to have prefix %s", hc, prefix)
		}
	}
}

func TestByCode_Sort(t *testing.T) {
	list := byCode{MakeCode(2, 3), MakeCode(1, 0), MakeCode(3, 4), MakeCode(2, 1), MakeCode(1, 1)}
	sort.Sort(list)

	expect := []string{"0", "01", "1", "100", "11"}
	for i, hc := range list {
		if hc.Digits() != expect[i] {
			t.Errorf("index %d: expected %q, got %q", i, expect[i], hc.Digits())
		}
	}
}
