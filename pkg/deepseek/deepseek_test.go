package deepseek_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"taskmaster-ai/pkg/deepseek"
)

type wireRequest struct {
	Model          string             `json:"model"`
	Messages       []deepseek.Message `json:"messages"`
	ResponseFormat *struct {
		Type string `json:"type"`
	} `json:"response_format"`
}

func TestGenerateContent(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer ds-key" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":{"message":"invalid api key","type":"auth"}}`))
			return
		}

		var req wireRequest
		json.NewDecoder(r.Body).Decode(&req)
		if req.Model != "deepseek-chat" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		w.Write([]byte(`{"id":"x","choices":[{"index":0,"message":{"role":"assistant","content":"ok"},"finish_reason":"stop"}],"usage":{"total_tokens":3}}`))
	}))
	defer ts.Close()

	t.Run("success", func(t *testing.T) {
		client, err := deepseek.New(deepseek.Config{APIKey: "ds-key", BaseURL: ts.URL})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		resp, err := client.GenerateContent(context.Background(), &deepseek.Request{
			Messages: []deepseek.Message{{Role: "user", Content: "hi"}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Text() != "ok" {
			t.Errorf("unexpected text %q", resp.Text())
		}
		if resp.Usage.TotalTokens != 3 {
			t.Errorf("unexpected usage %+v", resp.Usage)
		}
	})

	t.Run("api error message is surfaced", func(t *testing.T) {
		client, _ := deepseek.New(deepseek.Config{APIKey: "wrong", BaseURL: ts.URL})
		_, err := client.GenerateContent(context.Background(), &deepseek.Request{
			Messages: []deepseek.Message{{Role: "user", Content: "hi"}},
		})
		if err == nil || !strings.Contains(err.Error(), "invalid api key") {
			t.Fatalf("expected invalid api key error, got %v", err)
		}
	})
}

func TestGenerateContent_RequestShape(t *testing.T) {
	tests := map[string]struct {
		req        deepseek.Request
		wantRoles  []string
		wantFormat string
	}{
		"json mode with system instruction": {
			req: deepseek.Request{
				SystemInstruction: "answer in json",
				Messages:          []deepseek.Message{{Content: "analyze"}},
				JSONMode:          true,
			},
			wantRoles:  []string{"system", "user"},
			wantFormat: "json_object",
		},
		"plain text": {
			req: deepseek.Request{
				Messages: []deepseek.Message{{Role: "user", Content: "hi"}},
			},
			wantRoles: []string{"user"},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			var got wireRequest
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				json.NewDecoder(r.Body).Decode(&got)
				w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"{}"}}]}`))
			}))
			defer ts.Close()

			client, err := deepseek.New(deepseek.Config{APIKey: "k", Model: "m1", BaseURL: ts.URL})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if _, err := client.GenerateContent(context.Background(), &tc.req); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if got.Model != "m1" {
				t.Errorf("model = %q, want m1", got.Model)
			}
			if len(got.Messages) != len(tc.wantRoles) {
				t.Fatalf("messages = %+v, want roles %v", got.Messages, tc.wantRoles)
			}
			for i, role := range tc.wantRoles {
				if got.Messages[i].Role != role {
					t.Errorf("message %d role = %q, want %q", i, got.Messages[i].Role, role)
				}
			}
			switch {
			case tc.wantFormat == "" && got.ResponseFormat != nil:
				t.Errorf("unexpected response_format %+v", got.ResponseFormat)
			case tc.wantFormat != "" && (got.ResponseFormat == nil || got.ResponseFormat.Type != tc.wantFormat):
				t.Errorf("response_format = %+v, want %q", got.ResponseFormat, tc.wantFormat)
			}
		})
	}
}

func TestResponseText_Empty(t *testing.T) {
	var resp *deepseek.Response
	if resp.Text() != "" {
		t.Error("nil response must yield empty text")
	}
	if (&deepseek.Response{}).Text() != "" {
		t.Error("response without choices must yield empty text")
	}
}
