package model

import "testing"

func TestParseSeverity(t *testing.T) {
	cases := []struct {
		raw   string
		want  Severity
		known bool
	}{
		{"info", SeverityInfo, true},
		{"warning", SeverityWarning, true},
		{"error", SeverityError, true},
		{"critical", SeverityCritical, true},
		// 未知标签降级为 info,不报错
		{"bogus", SeverityInfo, false},
		{"", SeverityInfo, false},
		// 标签区分大小写,沿用旧版行为
		{"INFO", SeverityInfo, false},
		{"Warning", SeverityInfo, false},
	}

	for _, c := range cases {
		got, known := ParseSeverity(c.raw)
		if got != c.want {
			t.Errorf("ParseSeverity(%q) = %v, want %v", c.raw, got, c.want)
		}
		if known != c.known {
			t.Errorf("ParseSeverity(%q) known = %v, want %v", c.raw, known, c.known)
		}
	}
}

func TestSeverityEscalates(t *testing.T) {
	// error 和 critical 需要升级日志,其余不升级
	if !SeverityError.Escalates() {
		t.Error("Expected error severity to escalate")
	}
	if !SeverityCritical.Escalates() {
		t.Error("Expected critical severity to escalate")
	}
	if SeverityInfo.Escalates() {
		t.Error("Expected info severity not to escalate")
	}
	if SeverityWarning.Escalates() {
		t.Error("Expected warning severity not to escalate")
	}
}
