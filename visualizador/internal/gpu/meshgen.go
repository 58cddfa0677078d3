package gpu

/*
#include <stdlib.h>
*/
import "C"

import (
	"unsafe"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// quadGap separa as duas faces do quad de dupla face. Sem culling, cada lado
// vê apenas a face mais próxima.
const quadGap = 0.002

// genDoubleQuad gera um quad 1x1 no plano XZ com uma face para cima e outra
// para baixo, sem índices.
func genDoubleQuad() rl.Mesh {
	const h = 0.5
	y := float32(-quadGap)
	vertices := []float32{
		-h, 0, -h, -h, 0, h, h, 0, h,
		-h, 0, -h, h, 0, h, h, 0, -h,
		-h, y, -h, h, y, h, -h, y, h,
		-h, y, -h, h, y, -h, h, y, h,
	}
	normals := []float32{
		0, 1, 0, 0, 1, 0, 0, 1, 0,
		0, 1, 0, 0, 1, 0, 0, 1, 0,
		0, -1, 0, 0, -1, 0, 0, -1, 0,
		0, -1, 0, 0, -1, 0, 0, -1, 0,
	}
	uvs := []float32{
		0, 0, 0, 1, 1, 1,
		0, 0, 1, 1, 1, 0,
		0, 0, 1, 1, 0, 1,
		0, 0, 1, 0, 1, 1,
	}
	return uploadGeometry(vertices, normals, uvs)
}

// uploadGeometry copia os arrays para memória C, envia para a GPU e libera a
// cópia em RAM logo em seguida.
func uploadGeometry(vertices, normals, uvs []float32) rl.Mesh {
	var mesh rl.Mesh
	count := int32(len(vertices) / 3)
	mesh.VertexCount = count
	mesh.TriangleCount = count / 3

	mesh.Vertices = (*float32)(copyToC(unsafe.Pointer(&vertices[0]), len(vertices)*4))
	if len(normals) > 0 {
		mesh.Normals = (*float32)(copyToC(unsafe.Pointer(&normals[0]), len(normals)*4))
	}
	if len(uvs) > 0 {
		mesh.Texcoords = (*float32)(copyToC(unsafe.Pointer(&uvs[0]), len(uvs)*4))
	}

	rl.UploadMesh(&mesh, false)
	freeMeshRAM(&mesh)
	return mesh
}

func copyToC(data unsafe.Pointer, size int) unsafe.Pointer {
	if size <= 0 || data == nil {
		return nil
	}
	ptr := C.malloc(C.size_t(size))
	if ptr == nil {
		return nil
	}
	copy(unsafe.Slice((*byte)(ptr), size), unsafe.Slice((*byte)(data), size))
	return ptr
}

func freeMeshRAM(mesh *rl.Mesh) {
	if mesh.Vertices != nil {
		C.free(unsafe.Pointer(mesh.Vertices))
		mesh.Vertices = nil
	}
	if mesh.Normals != nil {
		C.free(unsafe.Pointer(mesh.Normals))
		mesh.Normals = nil
	}
	if mesh.Texcoords != nil {
		C.free(unsafe.Pointer(mesh.Texcoords))
		mesh.Texcoords = nil
	}
}
