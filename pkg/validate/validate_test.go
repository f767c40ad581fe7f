package validate_test

import (
	"testing"

	"github.com/Astemirdum/myshelf/pkg/validate"
	"github.com/stretchr/testify/require"
)

func TestCustomValidator_Validate(t *testing.T) {
	t.Parallel()
	type req struct {
		Email  string `validate:"required,email"`
		Period int    `validate:"required,oneof=7 14 21 30"`
	}
	tests := []struct {
		name    string
		in      req
		wantErr bool
	}{
		{name: "ok", in: req{Email: "reader@myshelf.io", Period: 14}},
		{name: "bad email", in: req{Email: "reader", Period: 14}, wantErr: true},
		{name: "bad period", in: req{Email: "reader@myshelf.io", Period: 10}, wantErr: true},
		{name: "empty", in: req{}, wantErr: true},
	}
	v := validate.NewCustomValidator()
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := v.Validate(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}
