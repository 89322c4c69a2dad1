package models

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToken_GetDriverID(t *testing.T) {
	tests := []struct {
		name    string
		subject string
		want    int64
		wantErr error
	}{
		{name: "numeric subject", subject: "42", want: 42},
		{name: "empty subject", subject: "", wantErr: ErrEmptySubject},
		{name: "non numeric subject", subject: "alice"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token := Token{RegisteredClaims: jwt.RegisteredClaims{Subject: tt.subject}}

			got, err := token.GetDriverID()
			if tt.want == 0 {
				require.Error(t, err)
				if tt.wantErr != nil {
					assert.ErrorIs(t, err, tt.wantErr)
				}
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
