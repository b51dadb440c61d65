package docs

import (
	"encoding/json"
	"strings"
	"testing"
)

func readDoc(t *testing.T) map[string]any {
	t.Helper()
	var doc map[string]any
	if err := json.Unmarshal([]byte(SwaggerInfo.ReadDoc()), &doc); err != nil {
		t.Fatalf("rendered doc is not valid JSON: %v", err)
	}
	return doc
}

func collectRefs(v any, out *[]string) {
	switch n := v.(type) {
	case map[string]any:
		for k, child := range n {
			if ref, ok := child.(string); ok && k == "$ref" {
				*out = append(*out, ref)
				continue
			}
			collectRefs(child, out)
		}
	case []any:
		for _, child := range n {
			collectRefs(child, out)
		}
	}
}

func TestDoc_RefsResolve(t *testing.T) {
	doc := readDoc(t)
	defs, _ := doc["definitions"].(map[string]any)

	var refs []string
	collectRefs(doc, &refs)
	if len(refs) == 0 {
		t.Fatalf("expected schema references")
	}
	for _, ref := range refs {
		name := strings.TrimPrefix(ref, "#/definitions/")
		if _, ok := defs[name]; !ok {
			t.Errorf("unresolved reference %s", ref)
		}
	}
}

func TestDoc_MedicationResponsesCarryLinks(t *testing.T) {
	doc := readDoc(t)
	paths := doc["paths"].(map[string]any)

	cases := []struct {
		path, method, code string
	}{
		{"/v1/medications", "post", "201"},
		{"/v1/medications/{id}", "get", "200"},
		{"/v1/medications/{id}/status", "patch", "200"},
	}
	for _, tc := range cases {
		op := paths[tc.path].(map[string]any)[tc.method].(map[string]any)
		resp := op["responses"].(map[string]any)[tc.code].(map[string]any)
		ref := resp["schema"].(map[string]any)["$ref"]
		if ref != "#/definitions/handler.medicationResponse" {
			t.Errorf("%s %s %s: expected medicationResponse, got %v", tc.method, tc.path, tc.code, ref)
		}
	}

	defs := doc["definitions"].(map[string]any)
	props := defs["handler.medicationResponse"].(map[string]any)["properties"].(map[string]any)
	if _, ok := props["_links"]; !ok {
		t.Fatalf("medicationResponse must document _links")
	}
}
