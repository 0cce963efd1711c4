// Package executor applies an artifact mapping to the filesystem through
// synthfs. It is the only component that writes outside the pack: every
// destination is validated against the home namespace and a protected-path
// list before any operation runs, and dry-run mode logs the plan without
// touching anything.
package executor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/synthfs/pkg/synthfs"
	synthfscore "github.com/arthur-debert/synthfs/pkg/synthfs/core"
	synthfsfs "github.com/arthur-debert/synthfs/pkg/synthfs/filesystem"
	"github.com/arthur-debert/synthfs/pkg/synthfs/operations"
	"github.com/rs/zerolog"

	"github.com/arthur-debert/aidot/pkg/errors"
	"github.com/arthur-debert/aidot/pkg/logging"
	"github.com/arthur-debert/aidot/pkg/paths"
	"github.com/arthur-debert/aidot/pkg/projection"
	"github.com/arthur-debert/aidot/pkg/types"
)

// Executor executes projection mappings using synthfs
type Executor struct {
	logger         zerolog.Logger
	dryRun         bool
	force          bool
	backupExisting bool
	filesystem     synthfs.FileSystem
	home           string
}

// New creates a new synthfs-based executor rooted at the user's home
func New(dryRun bool) (*Executor, error) {
	home, err := paths.GetHomeDirectory()
	if err != nil {
		return nil, err
	}
	return &Executor{
		logger:         logging.GetLogger("executor"),
		dryRun:         dryRun,
		filesystem:     synthfsfs.NewOSFileSystem("/"),
		backupExisting: true,
		home:           home,
	}, nil
}

// NewWithHome creates an executor targeting a specific home directory.
// Used by tests to redirect writes into a sandbox.
func NewWithHome(dryRun bool, home string) *Executor {
	return &Executor{
		logger:         logging.GetLogger("executor"),
		dryRun:         dryRun,
		filesystem:     synthfsfs.NewOSFileSystem("/"),
		backupExisting: true,
		home:           home,
	}
}

// EnableForce enables or disables force mode (replace existing files)
func (e *Executor) EnableForce(force bool) *Executor {
	e.force = force
	return e
}

// EnableBackup enables or disables backing up replaced regular files
func (e *Executor) EnableBackup(backup bool) *Executor {
	e.backupExisting = backup
	return e
}

// Apply plans and executes the operations for a mapping. All destinations
// are validated before anything runs so a bad mapping fails with no
// partial writes.
func (e *Executor) Apply(mapping projection.Mapping) error {
	ops, err := e.Plan(mapping)
	if err != nil {
		return err
	}
	return e.execute(ops)
}

// Plan converts a mapping into the ordered low-level operations that
// would realize it: parent directories first, then file writes and
// symlinks. Destinations outside the home namespace are rejected here.
func (e *Executor) Plan(mapping projection.Mapping) ([]types.Operation, error) {
	var ops []types.Operation
	seenDirs := make(map[string]bool)

	for _, artifact := range mapping {
		if err := e.validateDestination(artifact.Destination); err != nil {
			return nil, err
		}

		parent := filepath.Dir(artifact.Destination)
		if !seenDirs[parent] {
			seenDirs[parent] = true
			ops = append(ops, types.Operation{
				Type:        types.OperationCreateDir,
				Target:      parent,
				Description: fmt.Sprintf("create directory %s", parent),
			})
		}

		switch artifact.Kind {
		case projection.KindFile:
			mode := uint32(artifact.Mode)
			ops = append(ops, types.Operation{
				Type:        types.OperationWriteFile,
				Target:      artifact.Destination,
				Content:     string(artifact.Content),
				Mode:        &mode,
				Description: fmt.Sprintf("write %s", artifact.Description),
			})
		case projection.KindSymlink:
			ops = append(ops, types.Operation{
				Type:        types.OperationCreateSymlink,
				Source:      artifact.Source,
				Target:      artifact.Destination,
				Description: fmt.Sprintf("link %s", artifact.Description),
			})
		default:
			return nil, errors.Newf(errors.ErrActionInvalid,
				"unsupported artifact kind: %s", artifact.Kind)
		}
	}

	return ops, nil
}

// execute runs the planned operations through a synthfs pipeline
func (e *Executor) execute(ops []types.Operation) error {
	if e.dryRun {
		e.logger.Info().Msg("Dry run mode - operations would be executed:")
		for _, op := range ops {
			e.logOperation(op)
		}
		return nil
	}

	// synthfs validation fails on existing targets, so clear or park
	// them up front
	for _, op := range ops {
		if op.Type == types.OperationCreateSymlink || op.Type == types.OperationWriteFile {
			if err := e.prepareTarget(op.Target); err != nil {
				return err
			}
		}
	}

	synthOps := make([]synthfs.Operation, 0, len(ops))
	for _, op := range ops {
		synthOp, err := e.convertOperation(op)
		if err != nil {
			return errors.Wrapf(err, errors.ErrActionExecute,
				"failed to convert operation: %s", op.Description)
		}
		if synthOp != nil {
			synthOps = append(synthOps, synthOp)
		}
	}

	if len(synthOps) == 0 {
		e.logger.Info().Msg("No operations to execute")
		return nil
	}

	pipeline := synthfs.NewMemPipeline()
	for _, op := range synthOps {
		if err := pipeline.Add(op); err != nil {
			return errors.Wrapf(err, errors.ErrActionExecute,
				"failed to add operation to pipeline")
		}
	}

	ctx := context.Background()
	runner := synthfs.NewExecutor()

	e.logger.Info().Int("operationCount", len(synthOps)).Msg("Executing operations")

	result := runner.Run(ctx, pipeline, e.filesystem)
	if result.GetError() != nil {
		e.logger.Error().Err(result.GetError()).Msg("Pipeline execution failed")
		return errors.Wrapf(result.GetError(), errors.ErrActionExecute,
			"failed to execute operations")
	}

	e.logger.Info().Msg("All operations executed successfully")
	return nil
}

// prepareTarget clears an existing destination so the pipeline can write
// it. Symlinks are replaced silently (they are ours from a previous
// activation); regular files are backed up first unless backups are off.
func (e *Executor) prepareTarget(target string) error {
	info, err := os.Lstat(target)
	if err != nil {
		// Nothing in the way
		return nil
	}

	if info.Mode()&os.ModeSymlink != 0 {
		e.logger.Debug().Str("target", target).Msg("Replacing existing symlink")
		if err := os.Remove(target); err != nil {
			return errors.Wrapf(err, errors.ErrFileAccess,
				"failed to remove existing symlink: %s", target)
		}
		return nil
	}

	if !e.force {
		return errors.Newf(errors.ErrPermission,
			"refusing to replace existing file without --force: %s", target)
	}

	if e.backupExisting && !info.IsDir() {
		backup := target + ".bak"
		e.logger.Warn().
			Str("target", target).
			Str("backup", backup).
			Msg("Backing up existing file before replacement")
		if err := os.Rename(target, backup); err != nil {
			return errors.Wrapf(err, errors.ErrFileAccess,
				"failed to back up existing file: %s", target)
		}
		return nil
	}

	e.logger.Warn().Str("target", target).Msg("Removing existing file in force mode")
	if err := os.RemoveAll(target); err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess,
			"failed to remove existing file: %s", target)
	}
	return nil
}

// convertOperation converts an aidot operation to a synthfs operation
func (e *Executor) convertOperation(op types.Operation) (synthfs.Operation, error) {
	switch op.Type {
	case types.OperationCreateDir:
		return e.convertCreateDir(op)
	case types.OperationWriteFile:
		return e.convertWriteFile(op)
	case types.OperationCreateSymlink:
		return e.convertCreateSymlink(op)
	default:
		return nil, errors.Newf(errors.ErrActionInvalid,
			"unsupported operation type: %s", op.Type)
	}
}

func (e *Executor) convertCreateDir(op types.Operation) (synthfs.Operation, error) {
	if op.Target == "" {
		return nil, errors.New(errors.ErrInvalidInput,
			"create directory operation requires target")
	}

	// Creating an existing directory is a no-op, not a conflict
	if info, err := os.Stat(op.Target); err == nil && info.IsDir() {
		return nil, nil
	}

	mode := os.FileMode(0755)
	if op.Mode != nil {
		mode = os.FileMode(*op.Mode)
	}

	relPath, err := filepath.Rel("/", op.Target)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput,
			"failed to convert path: %s", op.Target)
	}

	opID := synthfscore.OperationID(fmt.Sprintf("create-dir-%s", op.Target))
	createOp := operations.NewCreateDirectoryOperation(opID, relPath)
	createOp.SetItem(&directoryItem{path: relPath, mode: mode})

	return synthfs.NewOperationsPackageAdapter(createOp), nil
}

func (e *Executor) convertWriteFile(op types.Operation) (synthfs.Operation, error) {
	if op.Target == "" {
		return nil, errors.New(errors.ErrInvalidInput,
			"write file operation requires target")
	}

	mode := os.FileMode(0644)
	if op.Mode != nil {
		mode = os.FileMode(*op.Mode)
	}

	relPath, err := filepath.Rel("/", op.Target)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput,
			"failed to convert path: %s", op.Target)
	}

	opID := synthfscore.OperationID(fmt.Sprintf("write-file-%s", op.Target))
	createOp := operations.NewCreateFileOperation(opID, relPath)
	createOp.SetItem(&fileItem{
		path:    relPath,
		content: []byte(op.Content),
		mode:    mode,
	})

	return synthfs.NewOperationsPackageAdapter(createOp), nil
}

func (e *Executor) convertCreateSymlink(op types.Operation) (synthfs.Operation, error) {
	if op.Source == "" || op.Target == "" {
		return nil, errors.New(errors.ErrInvalidInput,
			"symlink operation requires source and target")
	}

	relPath, err := filepath.Rel("/", op.Target)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput,
			"failed to convert path: %s", op.Target)
	}

	// The filesystem is rooted at "/", which rejoins this with the root,
	// so the symlink on disk stays absolute and resolves no matter where
	// it is read from
	relSource, err := filepath.Rel("/", op.Source)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput,
			"failed to convert path: %s", op.Source)
	}

	opID := synthfscore.OperationID(fmt.Sprintf("symlink-%s", op.Target))
	symlinkOp := operations.NewCreateSymlinkOperation(opID, relPath)
	symlinkOp.SetDescriptionDetail("target", relSource)
	symlinkOp.SetItem(&symlinkItem{path: relPath, target: relSource})

	return synthfs.NewOperationsPackageAdapter(symlinkOp), nil
}

// validateDestination ensures the destination is inside the home namespace
// and not a protected file
func (e *Executor) validateDestination(dest string) error {
	normalized, err := filepath.Abs(dest)
	if err != nil {
		return errors.Wrapf(err, errors.ErrInvalidInput,
			"failed to normalize destination: %s", dest)
	}

	if !isPathWithin(normalized, e.home) {
		return errors.Newf(errors.ErrPermission,
			"destination is outside the home directory: %s", dest)
	}

	return e.validateNotProtected(normalized)
}

// protectedPaths are files and directories under $HOME that aidot must
// never touch, no matter what a pack declares.
var protectedPaths = []string{
	".ssh/authorized_keys",
	".ssh/id_rsa",
	".ssh/id_ed25519",
	".gnupg",
	".password-store",
	".config/gh/hosts.yml",
	".aws/credentials",
	".kube/config",
	".docker/config.json",
}

// validateNotProtected ensures we're not overwriting critical files
func (e *Executor) validateNotProtected(path string) error {
	relPath, err := filepath.Rel(e.home, path)
	if err != nil {
		return nil
	}

	for _, protected := range protectedPaths {
		if relPath == protected || strings.HasPrefix(relPath, protected+"/") {
			e.logger.Warn().
				Str("path", path).
				Str("protected", protected).
				Msg("Blocking write to protected file")
			return errors.Newf(errors.ErrPermission,
				"cannot write to protected file: %s", relPath)
		}
	}

	return nil
}

// isPathWithin checks if a path is within a parent directory
func isPathWithin(path, parent string) bool {
	path = filepath.Clean(path)
	parent = filepath.Clean(parent)

	rel, err := filepath.Rel(parent, path)
	if err != nil {
		return false
	}

	return !strings.HasPrefix(rel, "..") && !strings.HasPrefix(rel, "/")
}

// logOperation logs details about an operation in dry-run mode
func (e *Executor) logOperation(op types.Operation) {
	logger := e.logger.With().
		Str("type", string(op.Type)).
		Str("description", op.Description).
		Logger()

	switch op.Type {
	case types.OperationCreateSymlink:
		logger.Info().
			Str("source", op.Source).
			Str("target", op.Target).
			Msg("Would create symlink")
	case types.OperationCreateDir:
		logger.Info().
			Str("target", op.Target).
			Msg("Would create directory")
	case types.OperationWriteFile:
		logger.Info().
			Str("target", op.Target).
			Int("contentLen", len(op.Content)).
			Msg("Would write file")
	default:
		logger.Info().Msg("Would execute operation")
	}
}
