// Where: cli/internal/plugin/plan/plan_test.go
// What: Tests for invocation plan rendering.
// Why: Ensure plans reflect the environment prepared by earlier hooks.
package plan

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/poruru/serverless-invoke/cli/internal/domain/lifecycle"
	"github.com/poruru/serverless-invoke/cli/internal/domain/service"
	"github.com/poruru/serverless-invoke/cli/internal/infra/env"
	"github.com/poruru/serverless-invoke/cli/internal/infra/ui"
	"github.com/poruru/serverless-invoke/cli/internal/plugin/invoke"
)

type recordingUI struct {
	raw []string
}

func (r *recordingUI) Info(string)                         {}
func (r *recordingUI) Warn(string)                         {}
func (r *recordingUI) Error(string)                        {}
func (r *recordingUI) Success(string)                      {}
func (r *recordingUI) Block(string, string, []ui.KeyValue) {}
func (r *recordingUI) Raw(text string)                     { r.raw = append(r.raw, text) }
func (r *recordingUI) output() string                      { return strings.Join(r.raw, "") }

func testService() *service.Config {
	return &service.Config{
		Service: "demo",
		Provider: service.Provider{
			Name:        "aws",
			Runtime:     "nodejs20.x",
			Stage:       "prod",
			Region:      "eu-west-1",
			Environment: service.EnvMap{"SHARED": "provider", "TABLE": "users"},
		},
		Functions: map[string]service.Function{
			"hello": {
				Handler:     "handler.hello",
				Environment: service.EnvMap{"TABLE": "hello-users"},
			},
			"world": {Handler: "handler.world", Runtime: "python3.12"},
		},
	}
}

func TestRenderLocalIncludesEffectiveEnvironment(t *testing.T) {
	svc := testService()
	environment := env.NewMap(map[string]string{"IS_LOCAL": "true", "FOO": "bar"})
	out := &recordingUI{}
	p := New(svc, environment, out)

	opts := lifecycle.Options{
		invoke.OptFunction: "hello",
		invoke.OptEnv:      []string{"FOO=ignored", "FOO=bar"},
	}
	if err := p.RenderLocal(context.Background(), opts); err != nil {
		t.Fatalf("render local: %v", err)
	}

	got := out.output()
	for _, want := range []string{
		"Local invocation of hello (demo)",
		"Handler:  handler.hello",
		"Runtime:  nodejs20.x",
		`FOO="bar"`,
		`IS_LOCAL="true"`,
		`SHARED="provider"`,
		`TABLE="hello-users"`,
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in output:\n%s", want, got)
		}
	}
	if strings.Index(got, "FOO=") > strings.Index(got, "TABLE=") {
		t.Fatalf("expected sorted environment:\n%s", got)
	}
}

func TestRenderLocalUsesFunctionRuntime(t *testing.T) {
	out := &recordingUI{}
	p := New(testService(), env.NewMap(nil), out)

	opts := lifecycle.Options{
		invoke.OptFunction:  "world",
		invoke.OptDocker:    true,
		invoke.OptDockerArg: []string{"--network", "host"},
		invoke.OptPath:      "event.json",
	}
	if err := p.RenderLocal(context.Background(), opts); err != nil {
		t.Fatalf("render local: %v", err)
	}
	got := out.output()
	for _, want := range []string{
		"Runtime:  python3.12",
		"Docker:   enabled (--network host)",
		"Input:    file event.json",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in output:\n%s", want, got)
		}
	}
}

func TestRenderRemotePrefersFlagsOverProvider(t *testing.T) {
	out := &recordingUI{}
	p := New(testService(), env.NewMap(nil), out)

	opts := lifecycle.Options{
		invoke.OptFunction:  "hello",
		invoke.OptStage:     "dev",
		invoke.OptQualifier: "3",
		invoke.OptData:      `{"a":1}`,
	}
	if err := p.RenderRemote(context.Background(), opts); err != nil {
		t.Fatalf("render remote: %v", err)
	}
	got := out.output()
	for _, want := range []string{
		"Remote invocation of hello (demo)",
		"Stage:      dev",
		"Region:     eu-west-1",
		"Qualifier:  3",
		"Type:       RequestResponse",
		"Input:      inline data",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in output:\n%s", want, got)
		}
	}
}

func TestRenderUnknownFunctionListsAvailable(t *testing.T) {
	p := New(testService(), env.NewMap(nil), &recordingUI{})

	err := p.RenderLocal(context.Background(), lifecycle.Options{invoke.OptFunction: "missing"})
	if !errors.Is(err, errFunctionNotFound) {
		t.Fatalf("expected errFunctionNotFound, got %v", err)
	}
	if !strings.Contains(err.Error(), "available: hello, world") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRenderWithoutServiceFails(t *testing.T) {
	p := New(nil, env.NewMap(nil), &recordingUI{})

	err := p.RenderRemote(context.Background(), lifecycle.Options{invoke.OptFunction: "hello"})
	if !errors.Is(err, invoke.ErrServiceNotLoaded) {
		t.Fatalf("expected ErrServiceNotLoaded, got %v", err)
	}
}

func TestLocalPlanRunsAfterEnvResolution(t *testing.T) {
	svc := testService()
	environment := env.NewMap(nil)
	out := &recordingUI{}

	manager := lifecycle.NewManager(nil)
	if err := manager.Register(invoke.New(svc, environment, nil)); err != nil {
		t.Fatalf("register invoke: %v", err)
	}
	if err := manager.Register(New(svc, environment, out)); err != nil {
		t.Fatalf("register plan: %v", err)
	}
	if err := manager.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}

	opts := lifecycle.Options{
		invoke.OptFunction: "hello",
		invoke.OptEnv:      []string{"IS_LOCAL=false"},
	}
	if err := manager.Run(context.Background(), "invoke local", opts); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.output(), `IS_LOCAL="false"`) {
		t.Fatalf("expected override in plan:\n%s", out.output())
	}
}
