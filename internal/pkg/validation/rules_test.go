package validation

import "testing"

type form struct {
	Branch   string `binding:"required,notblank"`
	Duration string `binding:"required,duration"`
}

func TestRules(t *testing.T) {
	v := New()
	tests := []struct {
		name  string
		in    form
		valid bool
	}{
		{"ok", form{"CSE", "4 Years"}, true},
		{"months", form{"CSE", "18 months"}, true},
		{"blank branch", form{"   ", "4 Years"}, false},
		{"free text duration", form{"CSE", "four years"}, false},
		{"missing unit", form{"CSE", "4"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.in)
			if (err == nil) != tt.valid {
				t.Errorf("Struct(%+v) err = %v, want valid=%v", tt.in, err, tt.valid)
			}
		})
	}
}

func TestRegisterWithGinIsIdempotent(t *testing.T) {
	for i := 0; i < 2; i++ {
		if err := RegisterWithGin(); err != nil {
			t.Fatal(err)
		}
	}
}
