package kube

import (
	"context"
	"path/filepath"
	"time"

	"github.com/alapatipavan/velero-wrapper/pkg/util"
	"github.com/alapatipavan/velero-wrapper/pkg/util/log"
	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/util/wait"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/tools/clientcmd"
)

// ResolveKubeconfig picks the kubeconfig path: the explicit flag, then
// $KUBECONFIG, then ~/.kube/config.
func ResolveKubeconfig(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}

	home, err := homedir.Dir()
	if err != nil {
		return "", errors.Wrap(err, "resolve home directory")
	}
	return util.EnvOrDefault("KUBECONFIG", filepath.Join(home, ".kube", "config")), nil
}

func NewClient(kubeconfig string) (kubernetes.Interface, error) {
	cfg, err := clientcmd.BuildConfigFromFlags("", kubeconfig)
	if err != nil {
		return nil, errors.Wrapf(err, "load kubeconfig %q", kubeconfig)
	}

	kc, err := kubernetes.NewForConfig(cfg)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return kc, nil
}

func isAvailable(c appsv1.DeploymentCondition) bool {
	return c.Type == appsv1.DeploymentAvailable && c.Status == corev1.ConditionTrue
}

func deploymentReadyFunc(ctx context.Context, kc kubernetes.Interface, namespace, name string) wait.ConditionFunc {
	return func() (done bool, err error) {
		deploy, err := kc.AppsV1().Deployments(namespace).
			Get(ctx, name, metav1.GetOptions{})
		if apierrors.IsNotFound(err) {
			return false, nil
		} else if err != nil {
			return false, errors.Errorf("describe %q deployment: %v", name, err)
		}

		for _, c := range deploy.Status.Conditions {
			if isAvailable(c) {
				return true, nil
			}
		}
		return false, nil
	}
}

// WaitDeploymentReady polls until the deployment reports an Available
// condition or timeout elapses.
func WaitDeploymentReady(ctx context.Context, kc kubernetes.Interface, namespace, name string, timeout time.Duration) error {
	log.Infof("waiting up to %s for deployment %s/%s to become ready", timeout, namespace, name)

	err := wait.PollImmediate(2*time.Second, timeout, func() (bool, error) {
		select {
		case <-ctx.Done():
			return false, ctx.Err()
		default:
		}
		return deploymentReadyFunc(ctx, kc, namespace, name)()
	})
	if err != nil {
		return errors.Wrapf(err, "deployment %s/%s not ready", namespace, name)
	}

	log.Infof("deployment %s/%s is ready", namespace, name)
	return nil
}
