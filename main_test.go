package main

import "testing"

func TestValidateWindowSize(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		wantErr       bool
	}{
		{"默认尺寸", 480, 800, false},
		{"宽度为零", 0, 800, true},
		{"高度为零", 480, 0, true},
		{"负数", -1, 800, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateWindowSize(tt.width, tt.height)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateWindowSize(%d, %d) error = %v, wantErr %v", tt.width, tt.height, err, tt.wantErr)
			}
		})
	}
}
