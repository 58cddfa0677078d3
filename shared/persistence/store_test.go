package persistence

import (
	"testing"

	"LumenForge/shared/scene"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testScene(t *testing.T) *scene.Scene {
	t.Helper()
	sc := scene.New()
	for _, name := range []string{"cube", "sphere"} {
		require.NoError(t, sc.AddEntity(scene.NewEntity(name, nil, nil)))
	}
	sc.Lights = []scene.Light{
		scene.NewDirectionalLight("sun", mgl32.Vec3{0, -1, 1}, mgl32.Vec3{1, 1, 1}, 1),
		scene.NewPointLight("bulb", mgl32.Vec3{0, 3, 0}, mgl32.Vec3{1, 0.5, 0}, 2, 10),
	}
	return sc
}

func openStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(t.TempDir(), "demo")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func TestSnapshotRoundTrip(t *testing.T) {
	st := openStore(t)
	sc := testScene(t)

	cube, _ := sc.EntityByName("cube")
	cube.Transform.SetPosition(1, 2, 3)
	cube.Transform.SetRotation(0.1, 0.2, 0.3)
	cube.Transform.SetScale(2, 2, 2)
	sc.Lights[1].Intensity = 5
	sc.Lights[1].Position = mgl32.Vec3{4, 4, 4}

	cams := []Pose{{Name: "main", Position: mgl32.Vec3{0, 2, -15}, Rotation: mgl32.Vec3{0.2, 0, 0}, Fov: 1}}
	snap := Capture("teste", "demo", sc, cams, mgl32.Vec3{0.1, 0.2, 0.3}, 1)
	require.NoError(t, st.Save(snap))
	require.NotZero(t, snap.ID)

	// Estraga a cena e restaura
	cube.Transform.SetPosition(9, 9, 9)
	cube.Transform.SetScale(1, 1, 1)
	sc.Lights[1].Intensity = 0

	loaded, err := st.Latest("demo")
	require.NoError(t, err)
	assert.Equal(t, "teste", loaded.Label)
	assert.Len(t, loaded.Entities, 2)
	assert.Len(t, loaded.Lights, 2)
	assert.Equal(t, 1, loaded.ActiveCamera)
	assert.Equal(t, mgl32.Vec3{0.1, 0.2, 0.3}, loaded.Background())

	assert.Equal(t, 4, Apply(loaded, sc))
	assert.Equal(t, mgl32.Vec3{1, 2, 3}, cube.Transform.GetPosition())
	assert.Equal(t, mgl32.Vec3{0.1, 0.2, 0.3}, cube.Transform.GetPitchYawRoll())
	assert.Equal(t, mgl32.Vec3{2, 2, 2}, cube.Transform.GetScale())
	assert.Equal(t, float32(5), sc.Lights[1].Intensity)
	assert.Equal(t, mgl32.Vec3{4, 4, 4}, sc.Lights[1].Position)
	assert.Equal(t, scene.LightPoint, sc.Lights[1].Type)

	pose, ok := loaded.CameraByName("main")
	require.True(t, ok)
	assert.Equal(t, mgl32.Vec3{0, 2, -15}, pose.Position())
	assert.Equal(t, float32(1), pose.Fov)
	_, ok = loaded.CameraByName("outra")
	assert.False(t, ok)
}

func TestLatestAndList(t *testing.T) {
	st := openStore(t)
	sc := testScene(t)

	_, err := st.Latest("demo")
	assert.ErrorIs(t, err, ErrNoSnapshot)

	require.NoError(t, st.Save(Capture("a", "demo", sc, nil, mgl32.Vec3{}, 0)))
	require.NoError(t, st.Save(Capture("b", "demo", sc, nil, mgl32.Vec3{}, 0)))
	require.NoError(t, st.Save(Capture("c", "outra", sc, nil, mgl32.Vec3{}, 0)))

	latest, err := st.Latest("demo")
	require.NoError(t, err)
	assert.Equal(t, "b", latest.Label)

	list, err := st.List()
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "a", list[0].Label)
	assert.Empty(t, list[0].Entities)

	first, err := st.Load(list[0].ID)
	require.NoError(t, err)
	assert.Len(t, first.Entities, 2)

	_, err = st.Load(999)
	assert.ErrorIs(t, err, ErrNoSnapshot)
}

func TestApplyIgnoresMissingRecords(t *testing.T) {
	sc := testScene(t)
	snap := Capture("x", "demo", sc, nil, mgl32.Vec3{}, 0)

	other := scene.New()
	require.NoError(t, other.AddEntity(scene.NewEntity("cube", nil, nil)))
	other.Lights = []scene.Light{scene.NewDirectionalLight("moon", mgl32.Vec3{0, -1, 0}, mgl32.Vec3{1, 1, 1}, 1)}

	assert.Equal(t, 1, Apply(snap, other))
	assert.Equal(t, "moon", other.Lights[0].Name)
}

func TestClosedStore(t *testing.T) {
	st, err := Open(t.TempDir(), "demo")
	require.NoError(t, err)
	require.NoError(t, st.Close())
	require.NoError(t, st.Close())

	assert.ErrorIs(t, st.Save(&Snapshot{}), ErrClosed)
	_, err = st.Latest("demo")
	assert.ErrorIs(t, err, ErrClosed)
	_, err = st.List()
	assert.ErrorIs(t, err, ErrClosed)
}
