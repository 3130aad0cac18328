package commands

import (
	"testing"
)

func TestParseTaskID_Simple(t *testing.T) {
	id, err := ParseTaskID([]string{"5"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 5 {
		t.Errorf("expected id 5, got %d", id)
	}
}

func TestParseTaskID_MultiDigit(t *testing.T) {
	id, err := ParseTaskID([]string{"123"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 123 {
		t.Errorf("expected id 123, got %d", id)
	}
}

func TestParseTaskID_ExtraArgsIgnored(t *testing.T) {
	// edit passes trailing title words after the id.
	id, err := ParseTaskID([]string{"2", "New", "title"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 2 {
		t.Errorf("expected id 2, got %d", id)
	}
}

func TestParseTaskID_NoArgs_Error(t *testing.T) {
	_, err := ParseTaskID(nil)
	if err == nil {
		t.Fatal("expected error for no args")
	}
	if err != ErrTaskIDRequired {
		t.Errorf("expected ErrTaskIDRequired, got %v", err)
	}
}

func TestParseTaskID_NonNumeric_Error(t *testing.T) {
	_, err := ParseTaskID([]string{"abc"})
	if err == nil {
		t.Fatal("expected error for non-numeric id")
	}
	expectedMsg := "invalid task id: abc"
	if err.Error() != expectedMsg {
		t.Errorf("expected %q, got %q", expectedMsg, err.Error())
	}
}

func TestParseTaskID_MixedDigits_Error(t *testing.T) {
	_, err := ParseTaskID([]string{"12a"})
	if err == nil {
		t.Fatal("expected error for mixed token")
	}
	expectedMsg := "invalid task id: 12a"
	if err.Error() != expectedMsg {
		t.Errorf("expected %q, got %q", expectedMsg, err.Error())
	}
}

func TestParseTaskID_Negative_Error(t *testing.T) {
	_, err := ParseTaskID([]string{"-5"})
	if err == nil {
		t.Fatal("expected error for negative id")
	}
	expectedMsg := "invalid task id: -5"
	if err.Error() != expectedMsg {
		t.Errorf("expected %q, got %q", expectedMsg, err.Error())
	}
}

func TestParseTaskID_Zero_Error(t *testing.T) {
	_, err := ParseTaskID([]string{"0"})
	if err == nil {
		t.Fatal("expected error for zero id")
	}
	expectedMsg := "invalid task id: 0"
	if err.Error() != expectedMsg {
		t.Errorf("expected %q, got %q", expectedMsg, err.Error())
	}
}

func TestParseTaskID_Overflow_Error(t *testing.T) {
	_, err := ParseTaskID([]string{"99999999999999999999"})
	if err == nil {
		t.Fatal("expected error for overflowing id")
	}
	expectedMsg := "invalid task id: 99999999999999999999"
	if err.Error() != expectedMsg {
		t.Errorf("expected %q, got %q", expectedMsg, err.Error())
	}
}

func TestParseTaskID_Empty_Error(t *testing.T) {
	_, err := ParseTaskID([]string{""})
	if err == nil {
		t.Fatal("expected error for empty token")
	}
	expectedMsg := "invalid task id: "
	if err.Error() != expectedMsg {
		t.Errorf("expected %q, got %q", expectedMsg, err.Error())
	}
}
