package touch

import (
	"testing"

	"touchcore-go/errcode"
	"touchcore-go/types"
)

func TestParseResourcesSerialOnly(t *testing.T) {
	// [{Connection, class=Serial, id=(5,0)}] binds the bus, no reset line.
	b, err := parseResources([]types.ResourceDescriptor{
		types.SerialConnection(5, 0),
	})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if b.conn != (types.ConnectionID{Low: 5}) {
		t.Fatalf("bound id %+v", b.conn)
	}
	if b.hasReset {
		t.Fatal("reset presence must be false without a GPIO descriptor")
	}
}

func TestParseResourcesMissingSerialIsFatal(t *testing.T) {
	lists := [][]types.ResourceDescriptor{
		nil,
		{types.GPIOConnection(7, 0)},
		{types.GPIOConnection(7, 0), types.GPIOConnection(8, 0)},
		{{Kind: types.ResourceInterrupt}},
	}
	for i, list := range lists {
		_, err := parseResources(list)
		if errcode.Of(err) != errcode.ResourceMissing {
			t.Fatalf("list %d: expected resource_missing, got %v", i, err)
		}
	}
}

func TestParseResourcesLastSerialWins(t *testing.T) {
	b, err := parseResources([]types.ResourceDescriptor{
		types.SerialConnection(5, 0),
		types.SerialConnection(9, 1),
	})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if b.conn != (types.ConnectionID{Low: 9, High: 1}) {
		t.Fatalf("expected the later descriptor to win, got %+v", b.conn)
	}
}

func TestParseResourcesBindsResetLine(t *testing.T) {
	b, err := parseResources([]types.ResourceDescriptor{
		types.GPIOConnection(7, 0),
		types.SerialConnection(5, 0),
	})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !b.hasReset || b.reset != (types.ConnectionID{Low: 7}) {
		t.Fatalf("reset binding wrong: hasReset=%v id=%+v", b.hasReset, b.reset)
	}
}

func TestParseResourcesIgnoresOtherSerialTypes(t *testing.T) {
	spi := types.ResourceDescriptor{
		Kind:  types.ResourceConnection,
		Class: types.ConnectionSerial,
		Type:  types.ConnectionTypeSPI,
		Conn:  types.ConnectionID{Low: 3},
	}
	_, err := parseResources([]types.ResourceDescriptor{spi})
	if errcode.Of(err) != errcode.ResourceMissing {
		t.Fatalf("SPI descriptor must not satisfy the serial binding: %v", err)
	}
}
