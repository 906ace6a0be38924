package logger

import "testing"

func TestParseAndSetLogLevels(t *testing.T) {
	ntry, err := Get(SubsystemTags.NTRY)
	if err != nil {
		t.Fatalf("Get(NTRY): %v", err)
	}
	chain, err := Get(SubsystemTags.CHAN)
	if err != nil {
		t.Fatalf("Get(CHAN): %v", err)
	}
	defer SetLogLevels(LevelInfo)

	// A bare level applies to every subsystem.
	if err := ParseAndSetLogLevels("debug"); err != nil {
		t.Fatalf("ParseAndSetLogLevels(debug): %v", err)
	}
	if ntry.Level() != LevelDebug || chain.Level() != LevelDebug {
		t.Errorf("bare level: NTRY=%s CHAN=%s, want DBG for both", ntry.Level(), chain.Level())
	}

	// Subsystem=level pairs apply individually.
	if err := ParseAndSetLogLevels("NTRY=trace,CHAN=error"); err != nil {
		t.Fatalf("ParseAndSetLogLevels(pairs): %v", err)
	}
	if ntry.Level() != LevelTrace {
		t.Errorf("NTRY level %s, want TRC", ntry.Level())
	}
	if chain.Level() != LevelError {
		t.Errorf("CHAN level %s, want ERR", chain.Level())
	}
}

func TestParseAndSetLogLevelsRejects(t *testing.T) {
	tests := []string{
		"noise",
		"NTRY=noise",
		"NOSUCH=debug",
		"NTRY-debug,CHAN=info",
	}
	for _, input := range tests {
		if err := ParseAndSetLogLevels(input); err == nil {
			t.Errorf("ParseAndSetLogLevels(%q) accepted invalid input", input)
		}
	}
}
