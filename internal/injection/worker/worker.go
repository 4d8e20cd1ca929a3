package worker

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"leadflow-server/internal/clients/proxyrotation"
	"leadflow-server/internal/observability"
	"leadflow-server/internal/store"
)

// finalDomainMarker is the line the worker prints on success
const finalDomainMarker = "FINAL_DOMAIN:"

var ErrNoCommand = errors.New("worker command not configured")

// Task is the job description passed to the automation worker as its
// single JSON argument.
type Task struct {
	LeadID      string                     `json:"leadId"`
	FirstName   string                     `json:"firstName"`
	LastName    string                     `json:"lastName"`
	Email       string                     `json:"email"`
	Phone       string                     `json:"phone"`
	Country     string                     `json:"country"`
	CountryCode string                     `json:"countryCode"`
	Fingerprint store.Fingerprint          `json:"fingerprint"`
	Proxy       proxyrotation.ProxyConfig  `json:"proxy"`
	TargetURL   string                     `json:"targetUrl"`
}

// Result is the interpreted outcome of one worker run
type Result struct {
	Success bool
	Domain  string
	Stdout  string
	Stderr  string
}

// Runner launches the external automation worker one subprocess per lead
type Runner struct {
	command string
	script  string
	logger  *observability.Logger
}

func NewRunner(command string, script string, logger *observability.Logger) Runner {
	return Runner{
		command: command,
		script:  script,
		logger:  logger,
	}
}

// Run executes the worker with the task as one JSON argument and blocks
// until it exits. The worker reports progress on stderr and prints a
// FINAL_DOMAIN line on stdout when the submission redirected. Exit 0 is
// the sole success signal; context cancellation kills the subprocess.
func (r *Runner) Run(ctx context.Context, task Task) (Result, error) {
	if r.command == "" {
		return Result{}, ErrNoCommand
	}

	payload, err := json.Marshal(task)
	if err != nil {
		return Result{}, fmt.Errorf("failed to encode worker task: %w", err)
	}

	args := make([]string, 0, 2)
	if r.script != "" {
		args = append(args, r.script)
	}
	args = append(args, string(payload))

	cmd := exec.CommandContext(ctx, r.command, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()

	result := Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if runErr != nil {
		if ctx.Err() != nil {
			return result, fmt.Errorf("worker cancelled: %w", ctx.Err())
		}
		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) {
			// Worker failure is an outcome, not a transport error.
			r.logger.Warn(observability.WithFields(ctx,
				observability.Field{Key: "exit_code", Value: exitErr.ExitCode()},
			), "worker exited nonzero")
			return result, nil
		}
		return result, fmt.Errorf("failed to run worker: %w", runErr)
	}

	result.Success = true
	result.Domain = parseFinalDomain(result.Stdout)
	return result, nil
}

// parseFinalDomain scans stdout for the last FINAL_DOMAIN marker
func parseFinalDomain(stdout string) string {
	var domain string
	scanner := bufio.NewScanner(strings.NewReader(stdout))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, finalDomainMarker) {
			candidate := strings.TrimSpace(strings.TrimPrefix(line, finalDomainMarker))
			if candidate != "" {
				domain = candidate
			}
		}
	}
	return domain
}
