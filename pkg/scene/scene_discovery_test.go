package scene

import (
	"os"
	"path/filepath"
	"testing"
)

func TestTitleCase(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"facing-mirrors", "Facing Mirrors"},
		{"red_sphere", "Red Sphere"},
		{"my-custom-scene", "My Custom Scene"},
		{"simple", "Simple"},
		{"UPPER-case", "Upper Case"},
		{"", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			result := titleCase(tc.input)
			if result != tc.expected {
				t.Errorf("titleCase(%q) = %q, want %q", tc.input, result, tc.expected)
			}
		})
	}
}

func TestListScenes(t *testing.T) {
	scenes := ListScenes()
	if len(scenes) != len(BuiltinNames()) {
		t.Fatalf("Expected %d scenes, got %d", len(BuiltinNames()), len(scenes))
	}
	for i, info := range scenes {
		if info.ID != BuiltinNames()[i] {
			t.Errorf("Scene %d: expected ID %q, got %q", i, BuiltinNames()[i], info.ID)
		}
		if info.Name == "" || info.Description == "" {
			t.Errorf("Scene %q is missing a name or description", info.ID)
		}
		if info.Type != "builtin" || info.Group != builtinGroup {
			t.Errorf("Scene %q has type %q group %q", info.ID, info.Type, info.Group)
		}
	}
}

func writeSceneFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestParseSceneFileMetadata(t *testing.T) {
	dir := t.TempDir()

	testCases := []struct {
		file     string
		content  string
		expected SceneInfo
	}{
		{
			file:    "complete.json",
			content: `{"name": "Sunset Spheres", "description": "Warm light", "group": "Showcase"}`,
			expected: SceneInfo{
				Name:        "Sunset Spheres",
				Description: "Warm light",
				Group:       "Showcase",
				Type:        "file",
			},
		},
		{
			file:    "no-metadata.json",
			content: `{"width": 10}`,
			expected: SceneInfo{
				Name:  "No Metadata",
				Group: "Scene Files",
				Type:  "file",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.file, func(t *testing.T) {
			path := writeSceneFile(t, dir, tc.file, tc.content)
			tc.expected.ID = path
			tc.expected.FilePath = path

			info, err := ParseSceneFileMetadata(path)
			if err != nil {
				t.Fatalf("ParseSceneFileMetadata() error: %v", err)
			}
			if info != tc.expected {
				t.Errorf("Got %+v, want %+v", info, tc.expected)
			}
		})
	}
}

func TestListAllScenes(t *testing.T) {
	dir := t.TempDir()
	writeSceneFile(t, dir, "b-scene.json", `{"name": "B Scene", "group": "Extras"}`)
	writeSceneFile(t, dir, "a-scene.json", `{"name": "A Scene", "group": "Extras"}`)
	writeSceneFile(t, dir, "broken.json", `{"name": `)
	writeSceneFile(t, dir, "notes.txt", `not a scene`)

	response, err := ListAllScenes(dir)
	if err != nil {
		t.Fatalf("ListAllScenes() error: %v", err)
	}

	if len(response.Groups) != 2 {
		t.Fatalf("Expected 2 groups, got %d: %+v", len(response.Groups), response.Groups)
	}
	if response.Groups[0].Name != builtinGroup {
		t.Errorf("Expected built-in group first, got %q", response.Groups[0].Name)
	}
	if len(response.Groups[0].Scenes) != len(BuiltinNames()) {
		t.Errorf("Expected %d built-in scenes, got %d", len(BuiltinNames()), len(response.Groups[0].Scenes))
	}

	extras := response.Groups[1]
	if extras.Name != "Extras" || len(extras.Scenes) != 2 {
		t.Fatalf("Unexpected file group %+v", extras)
	}
	if extras.Scenes[0].Name != "A Scene" || extras.Scenes[1].Name != "B Scene" {
		t.Errorf("Expected file scenes sorted by name, got %q, %q", extras.Scenes[0].Name, extras.Scenes[1].Name)
	}
}

func TestListSceneFiles_MissingDirectory(t *testing.T) {
	scenes, err := ListSceneFiles(filepath.Join(t.TempDir(), "nope"))
	if err != nil {
		t.Fatalf("ListSceneFiles() error: %v", err)
	}
	if len(scenes) != 0 {
		t.Errorf("Expected no scenes, got %d", len(scenes))
	}
}
