package slot_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"apelcal/internal/domains/schedule/slot"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
		wantErr  bool
	}{
		{
			name:     "midnight",
			input:    "00:00",
			expected: 0,
		},
		{
			name:     "morning",
			input:    "09:30",
			expected: 570,
		},
		{
			name:     "with seconds component",
			input:    "14:15:00",
			expected: 855,
		},
		{
			name:     "end of day",
			input:    "23:59",
			expected: 1439,
		},
		{
			name:    "hour out of range",
			input:   "24:00",
			wantErr: true,
		},
		{
			name:    "minute out of range",
			input:   "10:60",
			wantErr: true,
		},
		{
			name:    "not a time",
			input:   "morning",
			wantErr: true,
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			minutes, err := slot.ParseClock(tt.input)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, minutes)
			}
		})
	}
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "00:00", slot.FormatClock(0))
	assert.Equal(t, "09:05", slot.FormatClock(545))
	assert.Equal(t, "23:59", slot.FormatClock(1439))
}

func TestGenerate(t *testing.T) {
	t.Run("three hour window in half hour slots", func(t *testing.T) {
		slots, err := slot.Generate(slot.Window{Start: "09:00", End: "12:00"}, 30)

		require.NoError(t, err)
		require.Len(t, slots, 6)

		assert.Equal(t, slot.Slot{Start: "09:00", End: "09:30", Display: "09:00 - 09:30"}, slots[0])
		assert.Equal(t, slot.Slot{Start: "11:30", End: "12:00", Display: "11:30 - 12:00"}, slots[5])
	})

	t.Run("remainder shorter than duration is dropped", func(t *testing.T) {
		slots, err := slot.Generate(slot.Window{Start: "09:00", End: "10:45"}, 30)

		require.NoError(t, err)
		require.Len(t, slots, 3)
		assert.Equal(t, "10:30", slots[2].End)
	})

	t.Run("duration longer than window yields nothing", func(t *testing.T) {
		slots, err := slot.Generate(slot.Window{Start: "09:00", End: "09:30"}, 45)

		require.NoError(t, err)
		assert.Empty(t, slots)
	})

	t.Run("end before start yields nothing", func(t *testing.T) {
		slots, err := slot.Generate(slot.Window{Start: "12:00", End: "09:00"}, 30)

		require.NoError(t, err)
		assert.Empty(t, slots)
	})

	t.Run("zero duration is rejected", func(t *testing.T) {
		_, err := slot.Generate(slot.Window{Start: "09:00", End: "12:00"}, 0)

		assert.ErrorIs(t, err, slot.ErrInvalidDuration)
	})

	t.Run("negative duration is rejected", func(t *testing.T) {
		_, err := slot.Generate(slot.Window{Start: "09:00", End: "12:00"}, -15)

		assert.ErrorIs(t, err, slot.ErrInvalidDuration)
	})

	t.Run("times with seconds from the database", func(t *testing.T) {
		slots, err := slot.Generate(slot.Window{Start: "09:00:00", End: "10:00:00"}, 30)

		require.NoError(t, err)
		require.Len(t, slots, 2)
		assert.Equal(t, "09:00", slots[0].Start)
	})

	t.Run("slots are contiguous and sized exactly", func(t *testing.T) {
		duration := 25
		slots, err := slot.Generate(slot.Window{Start: "08:00", End: "18:00"}, duration)

		require.NoError(t, err)
		require.NotEmpty(t, slots)

		for i, s := range slots {
			start, err := slot.ParseClock(s.Start)
			require.NoError(t, err)
			end, err := slot.ParseClock(s.End)
			require.NoError(t, err)

			assert.Equal(t, duration, end-start)

			if i > 0 {
				prevEnd, err := slot.ParseClock(slots[i-1].End)
				require.NoError(t, err)
				assert.Equal(t, prevEnd, start)
			}
		}
	})
}

func TestGenerateAll(t *testing.T) {
	t.Run("windows concatenate in order", func(t *testing.T) {
		slots, err := slot.GenerateAll([]slot.Window{
			{Start: "09:00", End: "10:00"},
			{Start: "14:00", End: "15:00"},
		}, 30)

		require.NoError(t, err)
		require.Len(t, slots, 4)
		assert.Equal(t, "09:00", slots[0].Start)
		assert.Equal(t, "14:30", slots[3].Start)
	})

	t.Run("no windows yields nothing", func(t *testing.T) {
		slots, err := slot.GenerateAll(nil, 30)

		require.NoError(t, err)
		assert.Empty(t, slots)
	})
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                           string
		aStart, aEnd, bStart, bEnd     int
		expected                       bool
	}{
		{name: "disjoint", aStart: 540, aEnd: 570, bStart: 600, bEnd: 630, expected: false},
		{name: "touching edges do not overlap", aStart: 540, aEnd: 570, bStart: 570, bEnd: 600, expected: false},
		{name: "partial overlap", aStart: 540, aEnd: 600, bStart: 570, bEnd: 630, expected: true},
		{name: "containment", aStart: 540, aEnd: 660, bStart: 570, bEnd: 600, expected: true},
		{name: "identical", aStart: 540, aEnd: 570, bStart: 540, bEnd: 570, expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, slot.Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
			assert.Equal(t, tt.expected, slot.Overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd))
		})
	}
}
