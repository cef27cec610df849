package faqclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/luan-api/internal/domain/faq"
)

func TestFetchFAQsForwardsTokenAndDecodes(t *testing.T) {
	var gotAuth, gotContentType, gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"result":[
			{"question":"What is force majeure?","response":"An event.","clauseName":"Force Majeure","documentTypeName":"Loan Agreement","submittedByUserName":"Jane"},
			{"question":"Payment?","clauseName":null,"documentTypeName":"Guarantee Deed"},
			"not-an-object"
		]}}`))
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL + "/", Endpoint: "/api/faq", Timeout: time.Second})
	data, err := client.FetchFAQs(context.Background(), "tok-abc")
	require.NoError(t, err)

	require.Equal(t, "Bearer tok-abc", gotAuth)
	require.Equal(t, "application/json", gotContentType)
	require.Equal(t, "/api/faq", gotPath)
	require.Equal(t, faq.Collection{
		{
			Question:            "What is force majeure?",
			Response:            "An event.",
			ClauseName:          "Force Majeure",
			DocumentTypeName:    "Loan Agreement",
			SubmittedByUserName: "Jane",
		},
		{
			Question:         "Payment?",
			DocumentTypeName: "Guarantee Deed",
		},
	}, data)
}

func TestFetchFAQsNonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "token expired", http.StatusUnauthorized)
	}))
	defer server.Close()

	_, err := NewClient(Config{BaseURL: server.URL}).FetchFAQs(context.Background(), "tok")
	require.ErrorContains(t, err, "status=401")
}

func TestFetchFAQsTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	_, err := NewClient(Config{BaseURL: url, Endpoint: "faq"}).FetchFAQs(context.Background(), "tok")
	require.Error(t, err)
}

func TestDecodeCollection(t *testing.T) {
	cases := []struct {
		name    string
		body    string
		wantErr bool
		wantLen int
	}{
		{name: "invalid json", body: `{"data":`, wantErr: true},
		{name: "null", body: `null`, wantErr: true},
		{name: "empty object", body: `{}`, wantErr: true},
		{name: "empty array", body: `[]`, wantErr: true},
		{name: "no data key", body: `{"status":"ok"}`, wantLen: 0},
		{name: "empty result", body: `{"data":{"result":[]}}`, wantLen: 0},
		{name: "numeric field coerced", body: `{"data":{"result":[{"question":42}]}}`, wantLen: 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			data, err := decodeCollection([]byte(tc.body))
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, data)
			require.Len(t, data, tc.wantLen)
		})
	}
}

func TestJoinURL(t *testing.T) {
	require.Equal(t, "https://x.io/api/faq", joinURL("https://x.io/", "/api/faq"))
	require.Equal(t, "https://x.io/api/faq", joinURL("https://x.io", "api/faq"))
	require.Equal(t, "https://x.io", joinURL("https://x.io/", ""))
}
