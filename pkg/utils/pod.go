package utils

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"golang.org/x/sys/unix"
	v1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/fields"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"
)

var CPUNUM int

func init() {
	CPUNUM = runtime.NumCPU()
}

type Unit struct {
	Container string
	Pod       string
	Namespace string
}

// Collector counts events for one container. Collect returns the counts
// keyed by event name.
type Collector interface {
	Collect() (map[string]float64, error)
	Close() error
}

// NewClient builds a client from kubeconfig, or from the in-cluster
// service account when kubeconfig is empty.
func NewClient(kubeconfig string) (kubernetes.Interface, error) {
	var (
		k8sconfig *rest.Config
		err       error
	)
	if kubeconfig == "" {
		k8sconfig, err = rest.InClusterConfig()
	} else {
		k8sconfig, err = clientcmd.BuildConfigFromFlags("", kubeconfig)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to build config: %w", err)
	}
	k8sClient, err := kubernetes.NewForConfig(k8sconfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create k8s client: %w", err)
	}
	return k8sClient, nil
}

// GetPods lists the running pods of namespace scheduled on node. An empty
// namespace lists all namespaces.
func GetPods(ctx context.Context, client kubernetes.Interface, namespace, node string) ([]*v1.Pod, error) {
	pods, err := client.CoreV1().Pods(namespace).List(ctx, metav1.ListOptions{
		FieldSelector: fields.OneTermEqualSelector("spec.nodeName", node).String(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list pods: %w", err)
	}

	resPods := []*v1.Pod{}
	for i := range pods.Items {
		pod := &pods.Items[i]
		if pod.Spec.NodeName != node || pod.Status.Phase != v1.PodRunning {
			continue
		}
		resPods = append(resPods, pod.DeepCopy())
	}
	return resPods, nil
}

// CGroupPath returns the cgroup v2 directory of a container run by
// containerd under the systemd cgroup driver, e.g.
//
//	<root>/kubepods-burstable.slice/kubepods-burstable-pod<uid>.slice/cri-containerd-<id>.scope
func CGroupPath(root string, pod *v1.Pod, container *v1.ContainerStatus) (string, error) {
	id, err := ContainerId(container)
	if err != nil {
		return "", err
	}
	uid := strings.ReplaceAll(string(pod.UID), "-", "_")
	switch pod.Status.QOSClass {
	case v1.PodQOSBurstable:
		return filepath.Join(root, "kubepods-burstable.slice", "kubepods-burstable-pod"+uid+".slice", id), nil
	case v1.PodQOSBestEffort:
		return filepath.Join(root, "kubepods-besteffort.slice", "kubepods-besteffort-pod"+uid+".slice", id), nil
	default:
		return filepath.Join(root, "kubepods-pod"+uid+".slice", id), nil
	}
}

func CGroupFd(root string, pod *v1.Pod, container *v1.ContainerStatus) (*os.File, error) {
	path, err := CGroupPath(root, pod, container)
	if err != nil {
		return nil, err
	}
	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_DIRECTORY|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, &os.PathError{Op: "open", Path: path, Err: err}
	}
	return os.NewFile(uintptr(fd), path), nil
}

// just containerd for now
func ContainerId(container *v1.ContainerStatus) (string, error) {
	hashs := strings.Split(container.ContainerID, "://")
	if len(hashs) != 2 || hashs[1] == "" {
		return "", fmt.Errorf("unexpected container id %q", container.ContainerID)
	}
	return fmt.Sprintf("cri-containerd-%s.scope", hashs[1]), nil
}

// CgroupPids returns the pids listed in dir/cgroup.procs.
func CgroupPids(dir string) ([]int, error) {
	f, err := os.Open(filepath.Join(dir, "cgroup.procs"))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var pids []int
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		pid, err := strconv.Atoi(line)
		if err != nil {
			return nil, fmt.Errorf("bad pid %q in %s: %w", line, f.Name(), err)
		}
		pids = append(pids, pid)
	}
	return pids, scanner.Err()
}
