package dto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateClientRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		request CreateClientRequest
		wantErr bool
	}{
		{name: "valid", request: CreateClientRequest{Name: "svc", IsAdmin: true}},
		{name: "missing name", request: CreateClientRequest{}, wantErr: true},
		{name: "blank name", request: CreateClientRequest{Name: "  \t"}, wantErr: true},
		{name: "too long", request: CreateClientRequest{Name: strings.Repeat("a", 256)}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestUpdateClientRequest_Validate(t *testing.T) {
	empty := ""
	blank := "   "
	valid := "renamed"
	admin := true

	tests := []struct {
		name    string
		request UpdateClientRequest
		wantErr bool
	}{
		{name: "no fields", request: UpdateClientRequest{}},
		{name: "rename", request: UpdateClientRequest{Name: &valid}},
		{name: "admin flag only", request: UpdateClientRequest{IsAdmin: &admin}},
		{name: "regenerate only", request: UpdateClientRequest{RegenerateCredentials: true}},
		{name: "empty name", request: UpdateClientRequest{Name: &empty}, wantErr: true},
		{name: "blank name", request: UpdateClientRequest{Name: &blank}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
