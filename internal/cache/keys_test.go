package cache

import "testing"

func TestGenerateCacheKey(t *testing.T) {
	tests := []struct {
		name        string
		serviceName string
		objectType  string
		identifier  string
		paramsKey   []string
		expectedKey string
	}{
		{
			name:        "without paramsKey",
			serviceName: "assessment",
			objectType:  "result",
			identifier:  "abc123",
			paramsKey:   nil,
			expectedKey: "essayassess:assessment:result:abc123",
		},
		{
			name:        "with empty paramsKey",
			serviceName: "assessment",
			objectType:  "result",
			identifier:  "abc123",
			paramsKey:   []string{},
			expectedKey: "essayassess:assessment:result:abc123",
		},
		{
			name:        "with one paramsKey",
			serviceName: "embedding",
			objectType:  "openai",
			identifier:  "hash",
			paramsKey:   []string{"v1"},
			expectedKey: "essayassess:embedding:openai:hash:v1",
		},
		{
			name:        "with multiple paramsKey",
			serviceName: "question",
			objectType:  "meta",
			identifier:  "xyz",
			paramsKey:   []string{"a", "b", "c"},
			expectedKey: "essayassess:question:meta:xyz:a_b_c",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actualKey := GenerateCacheKey(tt.serviceName, tt.objectType, tt.identifier, tt.paramsKey...)
			if actualKey != tt.expectedKey {
				t.Errorf("GenerateCacheKey() = %v, want %v", actualKey, tt.expectedKey)
			}
		})
	}
}
