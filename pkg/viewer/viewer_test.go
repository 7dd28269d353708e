package viewer

import "testing"

func TestWindowScale(t *testing.T) {
	tests := []struct {
		width, height int
		expected      int
	}{
		{800, 600, 1},
		{480, 10, 1},
		{240, 160, 2},
		{100, 100, 5},
		{10, 479, 2},
		{0, 0, 1},
	}

	for _, tt := range tests {
		if got := windowScale(tt.width, tt.height); got != tt.expected {
			t.Errorf("windowScale(%d, %d) = %d, want %d", tt.width, tt.height, got, tt.expected)
		}
	}
}
