package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bibbank/iban/pkg/iban"
	"github.com/bibbank/iban/services/iban-service/internal/application/dto"
	"github.com/bibbank/iban/services/iban-service/internal/application/usecase"
)

func TestGetCountry(t *testing.T) {
	uc := usecase.NewGetCountry(iban.DefaultValidator())

	t.Run("found", func(t *testing.T) {
		resp, err := uc.Execute(context.Background(), "it")
		require.NoError(t, err)

		assert.Equal(t, "IT", resp.Code)
		assert.Equal(t, "Italy", resp.Name)
		assert.Equal(t, 27, resp.Length)
		assert.Equal(t, "2!a2!n1!a5!n5!n12!c", resp.Structure)
		assert.True(t, resp.AllowsLowerCase)
		assert.True(t, resp.SEPA)
		require.NotNil(t, resp.Bank)
		assert.Equal(t, dto.SpanResponse{Offset: 1, Length: 5}, *resp.Bank)
		require.NotNil(t, resp.Branch)
		assert.Equal(t, dto.SpanResponse{Offset: 6, Length: 5}, *resp.Branch)
	})

	t.Run("no branch span", func(t *testing.T) {
		resp, err := uc.Execute(context.Background(), "DE")
		require.NoError(t, err)
		assert.Nil(t, resp.Branch)
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), "ZZ")
		assert.ErrorIs(t, err, usecase.ErrCountryNotFound)
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), "NLD")
		assert.ErrorIs(t, err, usecase.ErrInvalidRequest)
	})
}

func TestListCountries(t *testing.T) {
	uc := usecase.NewListCountries(iban.DefaultValidator())

	all, err := uc.Execute(context.Background(), dto.ListCountriesRequest{})
	require.NoError(t, err)
	assert.Equal(t, iban.DefaultRegistry().Len(), all.Total)
	assert.Len(t, all.Countries, all.Total)
	for i := 1; i < len(all.Countries); i++ {
		assert.Less(t, all.Countries[i-1].Code, all.Countries[i].Code, "sorted by code")
	}

	sepa, err := uc.Execute(context.Background(), dto.ListCountriesRequest{SEPAOnly: true})
	require.NoError(t, err)
	assert.Greater(t, sepa.Total, 0)
	assert.Less(t, sepa.Total, all.Total)
	for _, c := range sepa.Countries {
		assert.True(t, c.SEPA, c.Code)
	}
}

func TestBuildIBAN(t *testing.T) {
	uc := usecase.NewBuildIBAN(iban.DefaultValidator())

	t.Run("computes check digits", func(t *testing.T) {
		resp, err := uc.Execute(context.Background(), dto.BuildIBANRequest{CountryCode: "nl", BBAN: "ABNA 0417 1643 00"})
		require.NoError(t, err)
		assert.Equal(t, "NL91ABNA0417164300", resp.IBAN)
		assert.Equal(t, "NL91 ABNA 0417 1643 00", resp.Formatted)
		assert.Equal(t, "91", resp.CheckDigits)
	})

	tests := []struct {
		name    string
		req     dto.BuildIBANRequest
		wantErr error
	}{
		{name: "missing fields", req: dto.BuildIBANRequest{CountryCode: "NL"}, wantErr: usecase.ErrInvalidRequest},
		{name: "unknown country", req: dto.BuildIBANRequest{CountryCode: "ZZ", BBAN: "123456"}, wantErr: usecase.ErrCountryNotFound},
		{name: "wrong structure", req: dto.BuildIBANRequest{CountryCode: "NL", BBAN: "1234041716430A"}, wantErr: usecase.ErrInvalidRequest},
		{name: "wrong length", req: dto.BuildIBANRequest{CountryCode: "NL", BBAN: "ABNA041716430"}, wantErr: usecase.ErrInvalidRequest},
		{name: "illegal characters", req: dto.BuildIBANRequest{CountryCode: "NL", BBAN: "ABNA-417164300"}, wantErr: usecase.ErrInvalidRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
