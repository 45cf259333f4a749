//go:build cuda

package compute

/*
#cgo CFLAGS: -I/opt/cuda/include
#cgo LDFLAGS: -L/opt/cuda/lib64 -L${SRCDIR} -lcudart -lgeokernels -lstdc++
#include <stdlib.h>

extern int geo_device_count();
extern const char* geo_device_name_get();
extern void geo_riemann_quadratic(const float* gamma, float* riemann);
extern void geo_geodesic_accel(const float* gamma, const float* vel, float* accel);
*/
import "C"
import "unsafe"

// CUDABackend offloads the Riemann quadratic kernel and the geodesic
// acceleration to the GPU. Host-to-device and device-to-host transfers
// happen synchronously around each call; the remaining small kernels
// stay on the CPU where transfer latency would dominate.
type CUDABackend struct {
	scalar     ScalarBackend
	available  bool
	deviceName string
}

func NewCUDABackend() *CUDABackend {
	count := int(C.geo_device_count())
	name := ""
	if count > 0 {
		name = C.GoString(C.geo_device_name_get())
	}
	return &CUDABackend{
		available:  count > 0,
		deviceName: name,
	}
}

func (c *CUDABackend) Name() string {
	if c.available {
		return "cuda (" + c.deviceName + ")"
	}
	return "cuda (not available)"
}

func (c *CUDABackend) Available() bool { return c.available }
func (c *CUDABackend) Cleanup()        {}

func (c *CUDABackend) MatMul4(a, b []float64) []float64 {
	return c.scalar.MatMul4(a, b)
}

func (c *CUDABackend) Christoffel(gInv []float64, dg [4][]float64) []float64 {
	return c.scalar.Christoffel(gInv, dg)
}

func (c *CUDABackend) RiemannQuadratic(gamma []float64) []float64 {
	if !c.available {
		return c.scalar.RiemannQuadratic(gamma)
	}

	gammaF := make([]float32, len(gamma))
	for i := range gamma {
		gammaF[i] = float32(gamma[i])
	}
	riemannF := make([]float32, dim*dim*dim*dim)

	C.geo_riemann_quadratic(
		(*C.float)(unsafe.Pointer(&gammaF[0])),
		(*C.float)(unsafe.Pointer(&riemannF[0])),
	)

	riemann := make([]float64, len(riemannF))
	for i := range riemannF {
		riemann[i] = float64(riemannF[i])
	}
	return riemann
}

func (c *CUDABackend) RicciContract(riemann []float64) []float64 {
	return c.scalar.RicciContract(riemann)
}

func (c *CUDABackend) ScalarContract(gInv, ricci []float64) float64 {
	return c.scalar.ScalarContract(gInv, ricci)
}

func (c *CUDABackend) GeodesicAccel(gamma, vel []float64) []float64 {
	if !c.available {
		return c.scalar.GeodesicAccel(gamma, vel)
	}

	gammaF := make([]float32, len(gamma))
	for i := range gamma {
		gammaF[i] = float32(gamma[i])
	}
	velF := make([]float32, len(vel))
	for i := range vel {
		velF[i] = float32(vel[i])
	}
	accelF := make([]float32, dim)

	C.geo_geodesic_accel(
		(*C.float)(unsafe.Pointer(&gammaF[0])),
		(*C.float)(unsafe.Pointer(&velF[0])),
		(*C.float)(unsafe.Pointer(&accelF[0])),
	)

	accel := make([]float64, dim)
	for i := range accelF {
		accel[i] = float64(accelF[i])
	}
	return accel
}
