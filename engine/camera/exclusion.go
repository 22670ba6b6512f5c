package camera

import (
	"math"

	"github.com/Carmen-Shannon/oxy-cam/common"
	"github.com/go-gl/mathgl/mgl32"
)

// excludeTerrain raises the eye on its orbit around lookat until it clears the ground by
// GroundClearance and the segment lookat -> eye does not cross the terrain. The loop is bounded
// by ExclusionIterations; when it does not converge the last orbit position is kept and only
// lifted vertically to the clearance height.
//
// Parameters:
//   - terrain: ground query, nil disables the check
//   - t: tuning
//   - lookat: orbit center
//   - h, v: requested orbit angles
//   - dist: orbit radius
//
// Returns:
//   - mgl32.Vec3: the corrected eye
//   - float32: the corrected vertical angle
func excludeTerrain(terrain Terrain, t Tuning, lookat mgl32.Vec3, h, v, dist float32) (mgl32.Vec3, float32) {
	eye := common.RotateView(lookat, h, v, dist)
	if terrain == nil {
		return eye, v
	}
	for range t.ExclusionIterations {
		ground := terrain.HeightAt(eye.X(), eye.Z()) + t.GroundClearance
		next := v + t.ExclusionStep
		if eye.Y() >= ground {
			if _, hit := terrain.Collide(lookat, eye); !hit {
				return eye, v
			}
		} else if dist > 0 {
			// elevation that puts the eye on the clearance height at this distance
			need := (ground + t.ExclusionTolerance - lookat.Y()) / dist
			switch {
			case need >= 1:
				next = maxElevation
			case need > -1:
				next = max(next, float32(math.Asin(float64(need))))
			}
		}
		next = min(next, maxElevation)
		if next <= v {
			break
		}
		v = next
		eye = common.RotateView(lookat, h, v, dist)
	}
	if ground := terrain.HeightAt(eye.X(), eye.Z()) + t.GroundClearance; eye.Y() < ground {
		eye[1] = ground
	}
	return eye, v
}

// excludeObjects pulls the eye in front of, or lifts it over, any solid object it penetrates.
// The object with skip as ID is the one being looked at and is ignored.
//
// Parameters:
//   - objects: object query, nil disables the check
//   - t: tuning
//   - skip: ID of the bound object
//   - lookat: orbit center
//   - h, v: orbit angles
//   - dist, minDist: orbit radius and the closest it may be pulled to
//
// Returns:
//   - mgl32.Vec3: the corrected eye
//   - float32: the corrected vertical angle
//   - float32: the corrected distance
func excludeObjects(objects ObjectQuery, t Tuning, skip uint64, lookat mgl32.Vec3, h, v, dist, minDist float32) (mgl32.Vec3, float32, float32) {
	eye := common.RotateView(lookat, h, v, dist)
	if objects == nil {
		return eye, v, dist
	}
	for range t.ExclusionIterations {
		obs, hit := penetrated(objects, t, skip, eye)
		if !hit {
			break
		}
		dir := eye.Sub(lookat)
		if dir.Len() < 1e-6 {
			break
		}
		along := obs.Center.Sub(lookat).Dot(dir.Normalize())
		nd := along - obs.Radius - t.ObjectMargin
		switch {
		case nd >= minDist && nd < dist:
			dist = nd
		case nd < minDist && dist > minDist:
			dist = minDist
			v = min(v+t.ExclusionStep, maxElevation)
		default:
			v = min(v+t.ExclusionStep, maxElevation)
		}
		eye = common.RotateView(lookat, h, v, dist)
	}
	return eye, v, dist
}

// penetrated returns the deepest obstacle containing eye.
func penetrated(objects ObjectQuery, t Tuning, skip uint64, eye mgl32.Vec3) (Obstacle, bool) {
	var best Obstacle
	bestDepth := float32(0)
	found := false
	for _, o := range objects.Nearby(eye, t.ObjectProbeRadius) {
		if o.ID == skip {
			continue
		}
		depth := o.Radius + t.ObjectMargin - eye.Sub(o.Center).Len()
		if depth > bestDepth {
			best, bestDepth, found = o, depth, true
		}
	}
	return best, found
}
