package scene

import (
	"LumenForge/shared/transform"

	"github.com/google/uuid"
)

// entityNamespace gera IDs estáveis a partir do nome da entidade, para que
// snapshots salvos continuem válidos entre execuções.
var entityNamespace = uuid.MustParse("6c1e8f0a-5b7d-4c3e-9a41-2f8d7e0b3c55")

// Entity (GameEntity) combina malha e material compartilhados com um
// Transform exclusivo.
type Entity struct {
	ID        uuid.UUID
	Name      string
	Mesh      *Mesh
	Material  *Material
	Transform *transform.Transform
}

func NewEntity(name string, mesh *Mesh, mat *Material) *Entity {
	return &Entity{
		ID:        EntityID(name),
		Name:      name,
		Mesh:      mesh,
		Material:  mat,
		Transform: transform.New(),
	}
}

// EntityID deriva o UUID (v5) de uma entidade a partir do nome.
func EntityID(name string) uuid.UUID {
	return uuid.NewSHA1(entityNamespace, []byte(name))
}
