package errors

import (
	"fmt"
	"testing"
)

func TestDirection_String(t *testing.T) {
	tests := []struct {
		direction Direction
		expected  string
	}{
		{SBOL3ToSBOL2, "SBOL3 to SBOL2"},
		{SBOL2ToSBOL3, "SBOL2 to SBOL3"},
		{DirectionUnknown, "unknown direction"},
		{Direction(999), "unknown direction"},
	}

	for _, test := range tests {
		t.Run(test.expected, func(t *testing.T) {
			if got := test.direction.String(); got != test.expected {
				t.Errorf("expected %s, got %s", test.expected, got)
			}
		})
	}
}

func TestUnsupportedError(t *testing.T) {
	err := NewUnsupported("Interaction", SBOL2ToSBOL3)

	expected := "conversion of Interaction from SBOL2 to SBOL3 not yet implemented"
	if err.Error() != expected {
		t.Errorf("expected %q, got %q", expected, err.Error())
	}

	if !IsUnsupported(err) {
		t.Error("expected IsUnsupported to be true")
	}
	if IsStructural(err) {
		t.Error("expected IsStructural to be false")
	}
}

func TestUnsupportedError_WithObject(t *testing.T) {
	err := NewUnsupportedObject("ModuleDefinition", "https://example.org/module1", SBOL2ToSBOL3)

	expected := "conversion of ModuleDefinition https://example.org/module1 from SBOL2 to SBOL3 not yet implemented"
	if err.Error() != expected {
		t.Errorf("expected %q, got %q", expected, err.Error())
	}

	if !IsUnsupported(err) {
		t.Error("expected IsUnsupported to be true")
	}
}

func TestUnsupportedError_SurvivesWrapping(t *testing.T) {
	base := NewUnsupported("ModuleDefinition", SBOL2ToSBOL3)
	wrapped := Wrap(base, "reverseVisitor", "visitModuleDefinition", "conversion")

	if !IsUnsupported(wrapped) {
		t.Error("classification lost through Wrap")
	}

	var ue *UnsupportedError
	if !As(wrapped, &ue) {
		t.Fatal("expected As to find UnsupportedError")
	}
	if ue.Construct != "ModuleDefinition" {
		t.Errorf("expected construct ModuleDefinition, got %s", ue.Construct)
	}
}

func TestStructuralError(t *testing.T) {
	err := NewStructural("http://example.org/act1", "activity has 2 types, SBOL2 supports exactly one")

	if !IsStructural(err) {
		t.Error("expected IsStructural to be true")
	}
	if IsUnsupported(err) {
		t.Error("expected IsUnsupported to be false")
	}

	expected := "structural violation in http://example.org/act1: activity has 2 types, SBOL2 supports exactly one"
	if err.Error() != expected {
		t.Errorf("expected %q, got %q", expected, err.Error())
	}
}

func TestStructuralError_NoObject(t *testing.T) {
	err := NewStructural("", "document has no objects")
	expected := "structural violation: document has no objects"
	if err.Error() != expected {
		t.Errorf("expected %q, got %q", expected, err.Error())
	}
}

func TestWrapStructural_Unwrap(t *testing.T) {
	cause := ErrDuplicateIdentity
	err := WrapStructural(cause, "http://example.org/c1", "identity already present")

	if !Is(err, ErrDuplicateIdentity) {
		t.Error("expected wrapped cause to be found via Is")
	}
	if !IsStructural(err) {
		t.Error("expected IsStructural to be true")
	}
}

func TestWrap(t *testing.T) {
	t.Run("nil error returns nil", func(t *testing.T) {
		if Wrap(nil, "c", "m", "a") != nil {
			t.Error("expected nil")
		}
	})

	t.Run("formats with standard pattern", func(t *testing.T) {
		err := Wrap(fmt.Errorf("boom"), "forwardVisitor", "visitSequence", "encoding remap")
		expected := "forwardVisitor.visitSequence: encoding remap failed: boom"
		if err.Error() != expected {
			t.Errorf("expected %q, got %q", expected, err.Error())
		}
	})
}
