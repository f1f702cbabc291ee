// internal/tuner/tuner_test.go
package tuner

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tamzrod/drivecfg/internal/record"
	"github.com/tamzrod/drivecfg/internal/schema"
)

func TestCursor_SelectionWraps(t *testing.T) {
	c := NewCursor(record.New(schema.Drive))
	assert.Equal(t, 0, c.Item())

	c.Up()
	assert.Equal(t, schema.Drive.Len()-1, c.Item())

	c.Down()
	assert.Equal(t, 0, c.Item())

	for i := 0; i < schema.Drive.Len(); i++ {
		c.Down()
	}
	assert.Equal(t, 0, c.Item())
}

func TestCursor_AdjustSteps(t *testing.T) {
	rec := record.New(schema.Drive)
	c := NewCursor(rec)

	c.Right(ModNone)
	assert.Equal(t, int16(301), rec.At(schema.DriveSpeedLimit))
	c.Right(ModX)
	assert.Equal(t, int16(311), rec.At(schema.DriveSpeedLimit))
	c.Left(ModY)
	assert.Equal(t, int16(211), rec.At(schema.DriveSpeedLimit))
	assert.Equal(t, "speed limit 2.11", c.Line())
}

func TestCursor_Press(t *testing.T) {
	rec := record.New(schema.Drive)
	c := NewCursor(rec)

	for _, d := range []byte("UU") {
		assert.True(t, c.Press(d, ModNone))
	}
	assert.Equal(t, schema.DriveServoMin, c.Item())

	assert.True(t, c.Press('L', ModX))
	assert.Equal(t, int16(-110), rec.At(schema.DriveServoMin))
	assert.Equal(t, "servo min -1.10", c.Line())

	assert.False(t, c.Press('A', ModNone))
}

func TestCursor_ValueWraps(t *testing.T) {
	rec := record.New(schema.Drive)
	rec.SetAt(0, 32767)
	c := NewCursor(rec)

	c.Right(ModNone)
	assert.Equal(t, int16(-32768), rec.At(0))
}

func TestCursor_NearZeroNegative(t *testing.T) {
	rec := record.New(schema.Drive)
	c := NewCursor(rec)
	for i := 0; i < schema.DriveServoOffset; i++ {
		c.Down()
	}
	c.Left(ModNone)
	assert.Equal(t, "servo offset -0.01", c.Line())
}

func TestCursor_EmptyRecord(t *testing.T) {
	c := NewCursor(record.New(schema.NewTable()))
	c.Up()
	c.Down()
	c.Right(ModY)
	assert.Equal(t, "", c.Line())
}
