package utils

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	v1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/types"
	"k8s.io/client-go/kubernetes/fake"
)

func testPod(name, node string, phase v1.PodPhase, qos v1.PodQOSClass) *v1.Pod {
	return &v1.Pod{
		ObjectMeta: metav1.ObjectMeta{
			Name:      name,
			Namespace: "default",
			UID:       types.UID("8e97aaf0-3461-45cd-902b-0922dd6af6e0"),
		},
		Spec: v1.PodSpec{NodeName: node},
		Status: v1.PodStatus{
			Phase:    phase,
			QOSClass: qos,
			ContainerStatuses: []v1.ContainerStatus{{
				Name:        "nginx",
				ContainerID: "containerd://7f7ccf05e97b",
			}},
		},
	}
}

func TestGetPods(t *testing.T) {
	client := fake.NewSimpleClientset(
		testPod("web-0", "node-a", v1.PodRunning, v1.PodQOSGuaranteed),
		testPod("web-1", "node-b", v1.PodRunning, v1.PodQOSGuaranteed),
		testPod("web-2", "node-a", v1.PodPending, v1.PodQOSGuaranteed),
	)

	pods, err := GetPods(context.Background(), client, "default", "node-a")
	require.NoError(t, err)
	require.Len(t, pods, 1)
	assert.Equal(t, "web-0", pods[0].Name)
}

func TestCGroupPath(t *testing.T) {
	container := &v1.ContainerStatus{ContainerID: "containerd://7f7ccf05e97b"}
	tests := []struct {
		qos  v1.PodQOSClass
		want string
	}{
		{v1.PodQOSGuaranteed, "/sys/fs/cgroup/kubepods.slice/kubepods-pod8e97aaf0_3461_45cd_902b_0922dd6af6e0.slice/cri-containerd-7f7ccf05e97b.scope"},
		{v1.PodQOSBurstable, "/sys/fs/cgroup/kubepods.slice/kubepods-burstable.slice/kubepods-burstable-pod8e97aaf0_3461_45cd_902b_0922dd6af6e0.slice/cri-containerd-7f7ccf05e97b.scope"},
		{v1.PodQOSBestEffort, "/sys/fs/cgroup/kubepods.slice/kubepods-besteffort.slice/kubepods-besteffort-pod8e97aaf0_3461_45cd_902b_0922dd6af6e0.slice/cri-containerd-7f7ccf05e97b.scope"},
	}
	for _, tt := range tests {
		pod := testPod("web-0", "node-a", v1.PodRunning, tt.qos)
		got, err := CGroupPath("/sys/fs/cgroup/kubepods.slice", pod, container)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestContainerId(t *testing.T) {
	id, err := ContainerId(&v1.ContainerStatus{ContainerID: "containerd://abc"})
	require.NoError(t, err)
	assert.Equal(t, "cri-containerd-abc.scope", id)

	_, err = ContainerId(&v1.ContainerStatus{})
	assert.Error(t, err)
}

func TestCgroupPids(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cgroup.procs"), []byte("12\n345\n\n"), 0o644))

	pids, err := CgroupPids(dir)
	require.NoError(t, err)
	assert.Equal(t, []int{12, 345}, pids)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "cgroup.procs"), []byte("12\nx\n"), 0o644))
	_, err = CgroupPids(dir)
	assert.Error(t, err)

	_, err = CgroupPids(filepath.Join(dir, "missing"))
	assert.Error(t, err)
}

func TestCGroupFd(t *testing.T) {
	root := t.TempDir()
	pod := testPod("web-0", "node-a", v1.PodRunning, v1.PodQOSGuaranteed)
	container := &pod.Status.ContainerStatuses[0]

	_, err := CGroupFd(root, pod, container)
	assert.ErrorIs(t, err, os.ErrNotExist)

	path, err := CGroupPath(root, pod, container)
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(path, 0o755))

	f, err := CGroupFd(root, pod, container)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, path, f.Name())
}
