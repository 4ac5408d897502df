package entities

import (
	"fmt"
	"slices"
)

// Task is a build task. DependsOn references other tasks of the same model.
type Task struct {
	name      string
	typ       string
	code      string
	dependsOn []*Task
}

func (t *Task) Name() string { return t.name }
func (t *Task) Type() string { return t.typ }
func (t *Task) Code() string { return t.code }

// DependsOn returns a copy of the task's dependency list.
func (t *Task) DependsOn() []*Task { return slices.Clone(t.dependsOn) }

// DependsOnNames returns the names of the tasks this task depends on, in order.
func (t *Task) DependsOnNames() []string {
	names := make([]string, 0, len(t.dependsOn))
	for _, dep := range t.dependsOn {
		names = append(names, dep.name)
	}
	return names
}

func (t *Task) String() string { return t.name }

// TaskSpec is an unresolved task whose dependencies are given by name.
type TaskSpec struct {
	Name      string   `yaml:"name"`
	Type      string   `yaml:"type"`
	Code      string   `yaml:"code"`
	DependsOn []string `yaml:"dependsOn"`
}

// ResolveTasks creates one Task per spec and links dependencies by name.
// Forward references are allowed. Names may also refer to the already built known
// tasks; a name matching neither is an error.
func ResolveTasks(specs []TaskSpec, known ...*Task) ([]*Task, error) {
	tasks := make([]*Task, 0, len(specs))
	byName := make(map[string]*Task, len(specs)+len(known))
	for _, task := range known {
		byName[task.name] = task
	}
	for _, spec := range specs {
		task := &Task{name: spec.Name, typ: spec.Type, code: spec.Code}
		tasks = append(tasks, task)
		byName[spec.Name] = task
	}

	for i, spec := range specs {
		for _, depName := range spec.DependsOn {
			dep, ok := byName[depName]
			if !ok {
				return nil, fmt.Errorf("%w: task %q depends on %q", ErrUnresolvedTaskDependency, spec.Name, depName)
			}
			tasks[i].dependsOn = append(tasks[i].dependsOn, dep)
		}
	}
	return tasks, nil
}

// TaskBuilder is the mutable form of Task.
type TaskBuilder struct {
	task Task
}

func NewTaskBuilder() *TaskBuilder { return &TaskBuilder{} }

func NewTaskBuilderFrom(task *Task) *TaskBuilder {
	copied := *task
	copied.dependsOn = slices.Clone(task.dependsOn)
	return &TaskBuilder{task: copied}
}

func (b *TaskBuilder) WithName(name string) *TaskBuilder {
	b.task.name = name
	return b
}

func (b *TaskBuilder) WithType(typ string) *TaskBuilder {
	b.task.typ = typ
	return b
}

func (b *TaskBuilder) WithCode(code string) *TaskBuilder {
	b.task.code = code
	return b
}

func (b *TaskBuilder) WithDependsOn(tasks ...*Task) *TaskBuilder {
	b.task.dependsOn = slices.Clone(tasks)
	return b
}

func (b *TaskBuilder) Build() *Task {
	task := b.task
	task.dependsOn = slices.Clone(b.task.dependsOn)
	return &task
}
