package shade

import "testing"

func TestTransformModeString(t *testing.T) {
	tests := []struct {
		mode TransformMode
		want string
	}{
		{TransformMatrix2D, "Matrix2D"},
		{TransformMatrix3D, "Matrix3D"},
		{TransformPixelSpace, "PixelSpace"},
		{TransformPixelSpaceMatrix, "PixelSpaceMatrix"},
		{TransformLit, "Lit"},
		{TransformMode(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("TransformMode(%d).String() = %q, want %q", int(tt.mode), got, tt.want)
		}
	}
}

func TestLightModeString(t *testing.T) {
	tests := []struct {
		mode LightMode
		want string
	}{
		{LightFlat, "Flat"},
		{LightVertexColor, "VertexColor"},
		{LightDirectional, "Directional"},
		{LightPoint, "Point"},
		{LightMode(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("LightMode(%d).String() = %q, want %q", int(tt.mode), got, tt.want)
		}
	}
}

func TestPipelineValidate(t *testing.T) {
	tests := []struct {
		name    string
		p       Pipeline
		wantErr bool
	}{
		{"solid 2d", Solid2D, false},
		{"solid 3d", Solid3D, false},
		{"screen", Screen2D, false},
		{"screen transformed", ScreenTransformed2D, false},
		{"vertex color", VertexColor3D, false},
		{"directional", Directional3D, false},
		{"point light", PointLight3D, false},
		{"directional without lit transform", Pipeline{TransformMatrix3D, LightDirectional}, true},
		{"point light on pixel path", Pipeline{TransformPixelSpace, LightPoint}, true},
		{"vertex color on lit transform", Pipeline{TransformLit, LightVertexColor}, true},
		{"unknown light mode", Pipeline{TransformMatrix3D, LightMode(42)}, true},
		{"unknown transform mode", Pipeline{TransformMode(42), LightFlat}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.p.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Pipeline%v.Validate() = %v, wantErr %v", tt.p, err, tt.wantErr)
			}
		})
	}
}

func TestPresetsHaveUniqueNames(t *testing.T) {
	seen := make(map[string]Pipeline)
	for _, p := range Presets() {
		name := p.Name()
		if name == "" {
			t.Errorf("preset %s has no name", p)
			continue
		}
		if prev, ok := seen[name]; ok {
			t.Errorf("presets %s and %s share the name %q", prev, p, name)
		}
		seen[name] = p
	}
}

func TestNonPresetHasNoName(t *testing.T) {
	p := Pipeline{TransformMatrix2D, LightVertexColor}
	if got := p.Name(); got != "" {
		t.Errorf("Pipeline%v.Name() = %q, want empty", p, got)
	}
}
