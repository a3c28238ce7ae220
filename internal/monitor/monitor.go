package monitor

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// Stats 一次采样的结果 (百分比，保留 1 位小数)
type Stats struct {
	CPU float64
	Mem float64
}

func (s Stats) String() string {
	return fmt.Sprintf("CPU %.1f%%  MEM %.1f%%", s.CPU, s.Mem)
}

// Sampler 在事件循环里同步采样，不另开协程。
// 读取失败时保留上一次的值
type Sampler struct {
	cpuPercent func() (float64, error)
	memPercent func() (float64, error)
	last       Stats
}

// NewSampler 用 gopsutil 读取系统负载
func NewSampler() *Sampler {
	return &Sampler{cpuPercent: readCPU, memPercent: readMem}
}

// Sample 采一次样并返回最新结果
func (s *Sampler) Sample() Stats {
	if v, err := s.memPercent(); err == nil {
		s.last.Mem = round1(v)
	}
	if v, err := s.cpuPercent(); err == nil {
		s.last.CPU = round1(v)
	}
	return s.last
}

// Last 最近一次采样结果，不触发新的采样
func (s *Sampler) Last() Stats {
	return s.last
}

func readMem() (float64, error) {
	v, err := mem.VirtualMemory()
	if err != nil {
		return 0, errors.Wrap(err, "mem")
	}
	return v.UsedPercent, nil
}

// Percent(0, false)：所有核的平均值，间隔为 0 表示和上一次调用比较，不阻塞
func readCPU() (float64, error) {
	c, err := cpu.Percent(0, false)
	if err != nil {
		return 0, errors.Wrap(err, "cpu")
	}
	if len(c) == 0 {
		return 0, errors.New("cpu: no samples")
	}
	return c[0], nil
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
