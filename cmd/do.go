package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/agentbridge/agentbridge/internal/output"
	"github.com/agentbridge/agentbridge/internal/session"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// DoResult is the output of a batch do command.
type DoResult struct {
	Action    string       `yaml:"action"          json:"action"`
	Steps     int          `yaml:"steps"           json:"steps"`
	Completed int          `yaml:"completed"       json:"completed"`
	Error     string       `yaml:"error,omitempty" json:"error,omitempty"`
	Results   []StepResult `yaml:"results"         json:"results"`
	Success   bool         `yaml:"success"         json:"success"`
}

// StepResult is the output for a single step within a batch.
type StepResult struct {
	Step      int    `yaml:"step"                 json:"step"`
	OK        bool   `yaml:"ok"                   json:"ok"`
	Action    string `yaml:"action"               json:"action"`
	Error     string `yaml:"error,omitempty"      json:"error,omitempty"`
	ElementID *int   `yaml:"element_id,omitempty" json:"element_id,omitempty"`
	Elapsed   string `yaml:"elapsed,omitempty"    json:"elapsed,omitempty"`
	Found     int    `yaml:"found,omitempty"      json:"found,omitempty"`
}

var doCmd = &cobra.Command{
	Use:   "do",
	Short: "Execute multiple actions in a batch",
	Long: `Execute a sequence of actions from a YAML list on stdin.

Each step is an action name with its parameters as a map. Steps share one
element cache: a scan step's ids stay valid for later taps in the same batch.
Execution stops on the first error unless --stop-on-error=false.

Supported step types: scan, tap, type, scroll, key, wait, sleep

Example:
  agentbridge do <<'EOF'
  - scan: {}
  - tap: { id: 5 }
  - type: { id: 2, text: "search query", enter: true }
  - wait: { text: "Results" }
  - key: { name: "back" }
  EOF`,
	RunE: runDo,
}

func init() {
	rootCmd.AddCommand(doCmd)
	doCmd.Flags().Bool("stop-on-error", true, "Stop execution on first error")
}

func runDo(cmd *cobra.Command, args []string) error {
	stopOnError, _ := cmd.Flags().GetBool("stop-on-error")

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return fmt.Errorf("failed to read stdin: %w", err)
	}

	var rawSteps []map[string]map[string]interface{}
	if err := yaml.Unmarshal(data, &rawSteps); err != nil {
		return fmt.Errorf("failed to parse YAML steps: %w", err)
	}
	if len(rawSteps) == 0 {
		return fmt.Errorf("no steps provided on stdin — pipe a YAML list of actions")
	}

	sess := newSession(cmd)
	results := make([]StepResult, 0, len(rawSteps))
	completed := 0
	var lastErr string

	for i, step := range rawSteps {
		stepNum := i + 1

		if len(step) != 1 {
			result := StepResult{Step: stepNum, OK: false,
				Error: fmt.Sprintf("expected exactly one action key, got %d", len(step))}
			results = append(results, result)
			lastErr = result.Error
			if stopOnError {
				break
			}
			continue
		}

		for action, params := range step {
			result, err := executeStep(sess, action, params)
			result.Step = stepNum
			if err != nil {
				result.OK = false
				result.Error = err.Error()
				results = append(results, result)
				lastErr = fmt.Sprintf("step %d: %s", stepNum, err.Error())
			} else {
				result.OK = true
				completed++
				results = append(results, result)
			}
		}
		if lastErr != "" && stopOnError {
			break
		}
	}

	return output.Print(DoResult{
		Action:    "do",
		Steps:     len(rawSteps),
		Completed: completed,
		Error:     lastErr,
		Results:   results,
		Success:   lastErr == "",
	})
}

func executeStep(sess *session.Session, action string, params map[string]interface{}) (StepResult, error) {
	switch action {
	case "scan":
		return executeScanStep(sess, params)
	case "tap":
		return executeTapStep(sess, params)
	case "type":
		return executeTypeStep(sess, params)
	case "scroll":
		return executeScrollStep(sess, params)
	case "key":
		return executeKeyStep(sess, params)
	case "wait":
		return executeWaitStep(sess, params)
	case "sleep":
		return executeSleepStep(params)
	default:
		return StepResult{Action: action}, fmt.Errorf("unknown step type %q — supported: scan, tap, type, scroll, key, wait, sleep", action)
	}
}

func executeScanStep(sess *session.Session, params map[string]interface{}) (StepResult, error) {
	includeAll := boolParam(params, "all", false)
	elements, err := sess.Scan(includeAll)
	if err != nil {
		return StepResult{Action: "scan"}, err
	}
	return StepResult{Action: "scan", Found: len(elements)}, nil
}

func executeTapStep(sess *session.Session, params map[string]interface{}) (StepResult, error) {
	id, ok := requireIntParam(params, "id")
	if !ok {
		return StepResult{Action: "tap"}, fmt.Errorf("tap step requires an id")
	}
	x, y, err := sess.CenterOf(id)
	if err != nil {
		return StepResult{Action: "tap"}, err
	}
	if boolParam(params, "long", false) {
		ms := intParam(params, "duration", 500)
		err = sess.Device().LongPress(x, y, time.Duration(ms)*time.Millisecond)
	} else {
		err = sess.Device().Tap(x, y)
	}
	if err != nil {
		return StepResult{Action: "tap"}, err
	}
	return StepResult{Action: "tap", ElementID: &id}, nil
}

func executeTypeStep(sess *session.Session, params map[string]interface{}) (StepResult, error) {
	id, ok := requireIntParam(params, "id")
	if !ok {
		return StepResult{Action: "type"}, fmt.Errorf("type step requires an id")
	}
	text := stringParam(params, "text", "")
	if text == "" {
		return StepResult{Action: "type"}, fmt.Errorf("type step requires text")
	}

	x, y, err := sess.CenterOf(id)
	if err != nil {
		return StepResult{Action: "type"}, err
	}
	dev := sess.Device()
	if err := dev.Tap(x, y); err != nil {
		return StepResult{Action: "type"}, err
	}
	time.Sleep(100 * time.Millisecond)

	if boolParam(params, "clear", false) {
		if err := dev.ClearText(); err != nil {
			return StepResult{Action: "type"}, err
		}
	}
	if err := dev.SendText(text); err != nil {
		return StepResult{Action: "type"}, err
	}
	if boolParam(params, "enter", false) {
		if err := dev.PressKey("enter"); err != nil {
			return StepResult{Action: "type"}, err
		}
	}
	return StepResult{Action: "type", ElementID: &id}, nil
}

func executeScrollStep(sess *session.Session, params map[string]interface{}) (StepResult, error) {
	direction := stringParam(params, "direction", "")
	if direction == "" {
		return StepResult{Action: "scroll"}, fmt.Errorf("scroll step requires a direction")
	}
	distance := floatParam(params, "distance", 0.5)
	durationMs := intParam(params, "duration", 300)

	dev := sess.Device()
	width, height, err := dev.WindowSize()
	if err != nil {
		return StepResult{Action: "scroll"}, err
	}
	x1, y1, x2, y2, err := swipePlan(width, height, direction, distance)
	if err != nil {
		return StepResult{Action: "scroll"}, err
	}
	if err := dev.Swipe(x1, y1, x2, y2, time.Duration(durationMs)*time.Millisecond); err != nil {
		return StepResult{Action: "scroll"}, err
	}
	return StepResult{Action: "scroll"}, nil
}

func executeKeyStep(sess *session.Session, params map[string]interface{}) (StepResult, error) {
	name := stringParam(params, "name", "")
	if name == "" {
		return StepResult{Action: "key"}, fmt.Errorf("key step requires a name")
	}
	if err := sess.Device().PressKey(name); err != nil {
		return StepResult{Action: "key"}, err
	}
	return StepResult{Action: "key"}, nil
}

func executeWaitStep(sess *session.Session, params map[string]interface{}) (StepResult, error) {
	text := stringParam(params, "text", "")
	res := stringParam(params, "res", "")
	if text == "" && res == "" {
		return StepResult{Action: "wait"}, fmt.Errorf("wait step requires text or res")
	}
	gone := boolParam(params, "gone", false)
	timeout := time.Duration(intParam(params, "timeout", 30)) * time.Second
	interval := time.Duration(intParam(params, "interval", 500)) * time.Millisecond

	result, err := pollCondition(sess, text, res, gone, timeout, interval)
	if err != nil {
		return StepResult{Action: "wait"}, err
	}
	return StepResult{Action: "wait", Elapsed: result.Elapsed}, nil
}

func executeSleepStep(params map[string]interface{}) (StepResult, error) {
	ms := intParam(params, "ms", 0)
	if ms <= 0 {
		return StepResult{Action: "sleep"}, fmt.Errorf("ms must be > 0")
	}
	time.Sleep(time.Duration(ms) * time.Millisecond)
	return StepResult{Action: "sleep", Elapsed: fmt.Sprintf("%dms", ms)}, nil
}

// Parameter extraction helpers for step maps

func stringParam(params map[string]interface{}, key, defaultVal string) string {
	if v, ok := params[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
		// Numeric values YAML may parse as int/float
		return fmt.Sprintf("%v", v)
	}
	return defaultVal
}

func intParam(params map[string]interface{}, key string, defaultVal int) int {
	if v, ok := intParamValue(params[key]); ok {
		return v
	}
	return defaultVal
}

// requireIntParam distinguishes "id: 0" from a missing id.
func requireIntParam(params map[string]interface{}, key string) (int, bool) {
	raw, ok := params[key]
	if !ok {
		return 0, false
	}
	return intParamValue(raw)
}

func intParamValue(raw interface{}) (int, bool) {
	switch n := raw.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	}
	return 0, false
}

func boolParam(params map[string]interface{}, key string, defaultVal bool) bool {
	if v, ok := params[key]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return defaultVal
}

func floatParam(params map[string]interface{}, key string, defaultVal float64) float64 {
	if v, ok := params[key]; ok {
		switch n := v.(type) {
		case float64:
			return n
		case int:
			return float64(n)
		case int64:
			return float64(n)
		}
	}
	return defaultVal
}
