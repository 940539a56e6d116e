package pulse

import (
	"encoding/binary"
	"fmt"
	"log/slog"

	"github.com/cogentcore/webgpu/wgpu"
)

// Entry points every shader module is expected to export.
const (
	VertexEntryPoint   = "main_vs"
	FragmentEntryPoint = "main_fs"
)

const spirvMagic = 0x07230203

// IsSPIRV reports whether code starts with the SPIR-V magic number.
func IsSPIRV(code []byte) bool {
	if len(code) < 4 || len(code)%4 != 0 {
		return false
	}

	return binary.LittleEndian.Uint32(code) == spirvMagic
}

// LoadShaderModule creates a shader module from code, which is either
// a SPIR-V binary or WGSL source text.
func LoadShaderModule(ctx *Context, label string, code []byte) (*wgpu.ShaderModule, error) {
	desc := &wgpu.ShaderModuleDescriptor{Label: label}

	if IsSPIRV(code) {
		slog.Debug("Load SPIR-V shader module", slog.String("label", label), slog.Int("size", len(code)))
		desc.SPIRVDescriptor = &wgpu.ShaderModuleSPIRVDescriptor{Code: code}
	} else {
		slog.Debug("Load WGSL shader module", slog.String("label", label), slog.Int("size", len(code)))
		desc.WGSLDescriptor = &wgpu.ShaderModuleWGSLDescriptor{Code: string(code)}
	}

	shader, err := ctx.Device.CreateShaderModule(desc)
	if err != nil {
		return nil, fmt.Errorf("compile shader %q: %w", label, err)
	}

	return shader, nil
}
