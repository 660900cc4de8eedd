// SPDX-License-Identifier: MIT

//go:build webgpu

package gpu

import (
	"fmt"
	"sync"
	"time"

	"github.com/openfluke/webgpu/wgpu"

	"github.com/katalvlaran/ndcanny/ndarray"
)

const (
	workgroupSize = 256
	mapTimeout    = 5 * time.Second
)

// webgpuDevice owns one adapter, device and queue. Calls are serialised.
type webgpuDevice struct {
	mu       sync.Mutex
	instance *wgpu.Instance
	adapter  *wgpu.Adapter
	device   *wgpu.Device
	queue    *wgpu.Queue
	name     string
}

// Open requests a high performance adapter, falling back to the default
// one, and returns a Device on it.
func Open() (Device, error) {
	instance := wgpu.CreateInstance(nil)
	if instance == nil {
		return nil, ErrNoDevice
	}
	adapter, err := instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		PowerPreference: wgpu.PowerPreferenceHighPerformance,
	})
	if err != nil || adapter == nil {
		adapter, err = instance.RequestAdapter(nil)
	}
	if err != nil || adapter == nil {
		instance.Release()
		return nil, errorf(CodeNoDevice, "request adapter: %v", err)
	}
	device, err := adapter.RequestDevice(nil)
	if err != nil {
		adapter.Release()
		instance.Release()
		return nil, errorf(CodeNoDevice, "request device: %v", err)
	}
	info := adapter.GetInfo()
	return &webgpuDevice{
		instance: instance,
		adapter:  adapter,
		device:   device,
		queue:    device.GetQueue(),
		name:     fmt.Sprintf("webgpu %s (%s)", info.Name, info.VendorName),
	}, nil
}

func (d *webgpuDevice) Name() string { return d.name }

func (d *webgpuDevice) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.device == nil {
		return nil
	}
	d.device.Release()
	d.adapter.Release()
	d.instance.Release()
	d.device = nil
	return nil
}

// convolveShader wraps the line index along the axis and reads the kernel
// reversed, so each invocation computes one output element.
func convolveShader(shape ndarray.Shape, axis, taps int) string {
	stride := 1
	for i := 0; i < axis; i++ {
		stride *= shape[i]
	}
	return fmt.Sprintf(`
		@group(0) @binding(0) var<storage, read> input : array<f32>;
		@group(0) @binding(1) var<storage, read> kernel : array<f32>;
		@group(0) @binding(2) var<storage, read_write> output : array<f32>;

		const TOTAL: u32 = %du;
		const STRIDE: u32 = %du;
		const LEN: i32 = %d;
		const TAPS: i32 = %d;

		@compute @workgroup_size(%d)
		fn main(@builtin(global_invocation_id) gid: vec3<u32>) {
			let idx = gid.x;
			if (idx >= TOTAL) { return; }
			let pos = i32((idx / STRIDE) %% u32(LEN));
			let base = idx - u32(pos) * STRIDE;
			var sum: f32 = 0.0;
			for (var j: i32 = 0; j < TAPS; j++) {
				let q = ((pos - TAPS / 2 + j) %% LEN + LEN) %% LEN;
				sum += input[base + u32(q) * STRIDE] * kernel[TAPS - 1 - j];
			}
			output[idx] = sum;
		}
	`, shape.Size(), stride, shape[axis], taps, workgroupSize)
}

// Convolve1D implements Device.
func (d *webgpuDevice) Convolve1D(data []float32, shape ndarray.Shape, axis int, kernel []float32) ([]float32, error) {
	if err := checkArgs(data, shape, axis, kernel); err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return []float32{}, nil
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.device == nil {
		return nil, ErrNoDevice
	}

	mod, err := d.device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          "convolve1d",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: convolveShader(shape, axis, len(kernel))},
	})
	if err != nil {
		return nil, errorf(CodeCompile, "shader: %v", err)
	}
	defer mod.Release()
	pipeline, err := d.device.CreateComputePipeline(&wgpu.ComputePipelineDescriptor{
		Label:   "convolve1d",
		Compute: wgpu.ProgrammableStageDescriptor{Module: mod, EntryPoint: "main"},
	})
	if err != nil {
		return nil, errorf(CodeCompile, "pipeline: %v", err)
	}
	defer pipeline.Release()

	storage := wgpu.BufferUsageStorage | wgpu.BufferUsageCopyDst | wgpu.BufferUsageCopySrc
	in, err := d.device.CreateBufferInit(&wgpu.BufferInitDescriptor{Label: "input", Contents: wgpu.ToBytes(data), Usage: storage})
	if err != nil {
		return nil, errorf(CodeBuffer, "input: %v", err)
	}
	defer in.Destroy()
	kb, err := d.device.CreateBufferInit(&wgpu.BufferInitDescriptor{Label: "kernel", Contents: wgpu.ToBytes(kernel), Usage: storage})
	if err != nil {
		return nil, errorf(CodeBuffer, "kernel: %v", err)
	}
	defer kb.Destroy()
	size := uint64(len(data) * 4)
	out, err := d.device.CreateBuffer(&wgpu.BufferDescriptor{Label: "output", Size: size, Usage: storage})
	if err != nil {
		return nil, errorf(CodeBuffer, "output: %v", err)
	}
	defer out.Destroy()
	staging, err := d.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "staging",
		Size:  size,
		Usage: wgpu.BufferUsageMapRead | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, errorf(CodeBuffer, "staging: %v", err)
	}
	defer staging.Destroy()

	bind, err := d.device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "convolve1d",
		Layout: pipeline.GetBindGroupLayout(0),
		Entries: []wgpu.BindGroupEntry{
			{Binding: 0, Buffer: in, Size: in.GetSize()},
			{Binding: 1, Buffer: kb, Size: kb.GetSize()},
			{Binding: 2, Buffer: out, Size: out.GetSize()},
		},
	})
	if err != nil {
		return nil, errorf(CodeBuffer, "bind group: %v", err)
	}
	defer bind.Release()

	enc, err := d.device.CreateCommandEncoder(nil)
	if err != nil {
		return nil, errorf(CodeDispatch, "encoder: %v", err)
	}
	pass := enc.BeginComputePass(nil)
	pass.SetPipeline(pipeline)
	pass.SetBindGroup(0, bind, nil)
	pass.DispatchWorkgroups(uint32((len(data)+workgroupSize-1)/workgroupSize), 1, 1)
	pass.End()
	enc.CopyBufferToBuffer(out, 0, staging, 0, size)
	cmd, err := enc.Finish(nil)
	if err != nil {
		return nil, errorf(CodeDispatch, "finish: %v", err)
	}
	d.queue.Submit(cmd)
	return d.read(staging, len(data))
}

func (d *webgpuDevice) read(staging *wgpu.Buffer, n int) ([]float32, error) {
	size := uint64(n * 4)
	done := make(chan struct{})
	var status wgpu.BufferMapAsyncStatus
	if err := staging.MapAsync(wgpu.MapModeRead, 0, size, func(s wgpu.BufferMapAsyncStatus) {
		status = s
		close(done)
	}); err != nil {
		return nil, errorf(CodeReadback, "map: %v", err)
	}
	timeout := time.After(mapTimeout)
	for waiting := true; waiting; {
		d.device.Poll(false, nil)
		select {
		case <-done:
			waiting = false
		case <-timeout:
			return nil, errorf(CodeReadback, "map timed out after %v", mapTimeout)
		default:
			time.Sleep(time.Millisecond)
		}
	}
	if status != wgpu.BufferMapAsyncStatusSuccess {
		return nil, errorf(CodeReadback, "map status %v", status)
	}
	result := make([]float32, n)
	copy(result, wgpu.FromBytes[float32](staging.GetMappedRange(0, uint(size))))
	staging.Unmap()
	return result, nil
}
