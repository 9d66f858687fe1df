package render

import (
	"errors"
	"fmt"

	"github.com/ember3d/ember/internal/engine/camera"
	"github.com/ember3d/ember/internal/engine/lighting"
	"github.com/ember3d/ember/pkg/math"
)

// ErrFinished is returned when a queue is used after Finish consumed it.
var ErrFinished = errors.New("render queue already finished")

type entry struct {
	mesh Drawable
	mat  Material
}

// Queue collects drawables for one frame, bucketed by material kind so
// that state changes between draws stay cheap. Publish order is preserved
// inside a bucket; order between buckets is unspecified, except that the
// skybox bucket always renders first.
type Queue struct {
	scene    SceneData
	buckets  map[Kind][]entry
	finished bool
}

// NewQueue creates an empty queue for the frame.
func NewQueue() *Queue {
	return &Queue{buckets: make(map[Kind][]entry)}
}

// SetCamera sets the projection camera for the frame.
func (q *Queue) SetCamera(c *camera.Camera) {
	q.scene.Camera = c
}

// SetCameraPos sets the camera translation.
func (q *Queue) SetCameraPos(pos math.Vec3) {
	q.scene.CameraPos = pos
}

// SetCameraRot sets the camera rotation as Euler angles in radians.
func (q *Queue) SetCameraRot(rot math.Vec3) {
	q.scene.CameraRot = rot
}

// SetLights sets the frame's light collection.
func (q *Queue) SetLights(l *lighting.Lights) {
	q.scene.Lights = l
}

// SetSkybox publishes the skybox: its maps become the frame environment
// and its mesh is queued for drawing. A nil skybox clears the reference
// and queues nothing.
func (q *Queue) SetSkybox(sb Skybox) error {
	if q.finished {
		return ErrFinished
	}
	q.scene.Skybox = sb
	if sb == nil {
		return nil
	}
	return q.Publish(sb.Mesh(), sb.Material())
}

// Publish appends a drawable to its material's bucket.
func (q *Queue) Publish(mesh Drawable, mat Material) error {
	if q.finished {
		return ErrFinished
	}
	kind := mat.Kind()
	q.buckets[kind] = append(q.buckets[kind], entry{mesh: mesh, mat: mat})
	return nil
}

// Bounds is a bounding sphere in world space.
type Bounds struct {
	Center math.Vec3
	Radius float32
}

// PublishBounded publishes a drawable with its bounding volume. Frustum
// culling is not implemented; the bounds are accepted and ignored so
// callers can start supplying them now.
func (q *Queue) PublishBounded(mesh Drawable, bounds Bounds, mat Material) error {
	_ = bounds
	return q.Publish(mesh, mat)
}

// Scene exposes the frame state materials receive during Finish.
func (q *Queue) Scene() *SceneData {
	return &q.scene
}

// Finish renders every published drawable to the target and consumes the
// queue. It returns the number of triangles submitted.
func (q *Queue) Finish(target Target) (int32, error) {
	if q.finished {
		return 0, ErrFinished
	}
	q.finished = true

	var cameraMat math.Mat4
	if q.scene.Camera != nil {
		cameraMat = q.scene.Camera.Matrix()
	} else {
		cameraMat = math.Identity()
	}
	world := q.worldMatrix()

	var triangles int32

	// The skybox draws first so opaque geometry overdraws it by depth.
	if sky := q.buckets[KindSkybox]; len(sky) > 0 {
		n, err := q.renderBucket(KindSkybox, sky, target, cameraMat, world)
		if err != nil {
			return triangles, err
		}
		triangles += n
	}

	for kind, bucket := range q.buckets {
		if kind == KindSkybox {
			continue
		}
		n, err := q.renderBucket(kind, bucket, target, cameraMat, world)
		if err != nil {
			return triangles, err
		}
		triangles += n
	}
	return triangles, nil
}

func (q *Queue) renderBucket(kind Kind, bucket []entry, target Target, cameraMat, world math.Mat4) (int32, error) {
	var triangles int32
	for _, e := range bucket {
		if err := e.mat.Render(e.mesh, target, cameraMat, world, &q.scene); err != nil {
			return triangles, fmt.Errorf("render %s bucket: %w", kind, err)
		}
		triangles += e.mesh.IndexCount() / 3
	}
	return triangles, nil
}

// worldMatrix builds the view transform from the camera position and the
// per-axis rotations, applied X then Y then Z.
func (q *Queue) worldMatrix() math.Mat4 {
	rot := q.scene.CameraRot
	m := math.Translate(q.scene.CameraPos)
	m = m.Mul(math.RotateX(rot.X))
	m = m.Mul(math.RotateY(rot.Y))
	m = m.Mul(math.RotateZ(rot.Z))
	return m
}
