// Package backup provides backup and restore functionality for the daybook app.
// This file contains tests for the backup module.
package backup

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// createTestData creates sample data files for testing.
func createTestData(t *testing.T, dataDir string) {
	t.Helper()

	// Create tasks.json (day-bucketed)
	tasks := map[string]interface{}{
		"days": map[string]interface{}{
			"2026-08-31": []map[string]interface{}{
				{"id": "t_1", "title": "Task 1", "time": "09:00", "category": "Work", "done": false, "reminded": false},
				{"id": "t_2", "title": "Task 2", "time": "10:00", "category": "Home", "done": true, "reminded": true},
			},
			"2026-09-01": []map[string]interface{}{
				{"id": "t_3", "title": "Task 3", "time": "11:00", "category": "Work", "done": false, "reminded": false},
			},
		},
	}
	writeTestJSON(t, filepath.Join(dataDir, "tasks.json"), tasks)

	// Create categories.json
	categories := map[string]interface{}{
		"categories": []string{"Work", "Home", "Personal"},
	}
	writeTestJSON(t, filepath.Join(dataDir, "categories.json"), categories)
}

// writeTestJSON writes JSON to a file for testing.
func writeTestJSON(t *testing.T, path string, v interface{}) {
	t.Helper()

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		t.Fatalf("failed to marshal JSON: %v", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
}

// readTestJSON reads JSON from a file for testing.
func readTestJSON(t *testing.T, path string) map[string]interface{} {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read file: %v", err)
	}

	var result map[string]interface{}
	if err := json.Unmarshal(data, &result); err != nil {
		t.Fatalf("failed to unmarshal JSON: %v", err)
	}

	return result
}

// TestManager_Create tests backup creation.
func TestManager_Create(t *testing.T) {
	// Create temp directory
	tmpDir := t.TempDir()
	createTestData(t, tmpDir)

	manager := NewManager(tmpDir, "1.2.0-test")

	// Create backup
	name, err := manager.Create()
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	// Verify backup name format (2006-01-02_150405_XXX where XXX is milliseconds)
	if len(name) != 21 { // "2006-01-02_150405_XXX"
		t.Errorf("Expected backup name length 21, got %d: %s", len(name), name)
	}

	// Verify backup directory exists
	backupPath := filepath.Join(tmpDir, BackupsDir, name)
	if _, err := os.Stat(backupPath); os.IsNotExist(err) {
		t.Errorf("Backup directory not created: %s", backupPath)
	}

	// Verify files were copied
	for _, filename := range dataFiles {
		filePath := filepath.Join(backupPath, filename)
		if _, err := os.Stat(filePath); os.IsNotExist(err) {
			t.Errorf("File not backed up: %s", filename)
		}
	}

	// Verify manifest
	manifestPath := filepath.Join(backupPath, ManifestFile)
	manifest := readTestJSON(t, manifestPath)

	if manifest["version"] != ManifestVersion {
		t.Errorf("Expected manifest version %s, got %v", ManifestVersion, manifest["version"])
	}

	if manifest["app_version"] != "1.2.0-test" {
		t.Errorf("Expected app_version 1.2.0-test, got %v", manifest["app_version"])
	}

	// Verify stats
	stats, ok := manifest["stats"].(map[string]interface{})
	if !ok {
		t.Fatal("Stats not found in manifest")
	}

	// Tasks counted across all day buckets.
	if int(stats["tasks"].(float64)) != 3 {
		t.Errorf("Expected 3 tasks, got %v", stats["tasks"])
	}

	if int(stats["categories"].(float64)) != 3 {
		t.Errorf("Expected 3 categories, got %v", stats["categories"])
	}
}

// TestManager_List tests listing backups.
func TestManager_List(t *testing.T) {
	tmpDir := t.TempDir()
	createTestData(t, tmpDir)

	manager := NewManager(tmpDir, "1.0.0")

	// No backups initially
	backups, err := manager.List()
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(backups) != 0 {
		t.Errorf("Expected 0 backups, got %d", len(backups))
	}

	// Create some backups
	name1, _ := manager.Create()
	time.Sleep(10 * time.Millisecond)
	name2, _ := manager.Create()

	// List should return both, newest first
	backups, err = manager.List()
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}

	if len(backups) != 2 {
		t.Fatalf("Expected 2 backups, got %d", len(backups))
	}

	// Newest should be first
	if backups[0].Name != name2 {
		t.Errorf("Expected newest backup %s first, got %s", name2, backups[0].Name)
	}

	if backups[1].Name != name1 {
		t.Errorf("Expected older backup %s second, got %s", name1, backups[1].Name)
	}
}

// TestManager_Restore tests restoring from a backup.
func TestManager_Restore(t *testing.T) {
	tmpDir := t.TempDir()
	createTestData(t, tmpDir)

	manager := NewManager(tmpDir, "1.0.0")

	// Create backup
	name, err := manager.Create()
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	// Modify original data
	tasks := map[string]interface{}{
		"days": map[string]interface{}{
			"2026-09-02": []map[string]interface{}{
				{"id": "t_new", "title": "New Task", "time": "12:00", "category": "Work", "done": false, "reminded": false},
			},
		},
	}
	writeTestJSON(t, filepath.Join(tmpDir, "tasks.json"), tasks)

	// Verify modification
	modified := readTestJSON(t, filepath.Join(tmpDir, "tasks.json"))
	if len(modified["days"].(map[string]interface{})) != 1 {
		t.Fatal("Expected 1 day bucket after modification")
	}

	// Restore
	if err := manager.Restore(name); err != nil {
		t.Fatalf("Restore() error: %v", err)
	}

	// Verify restoration
	restored := readTestJSON(t, filepath.Join(tmpDir, "tasks.json"))
	days := restored["days"].(map[string]interface{})
	if len(days) != 2 {
		t.Errorf("Expected 2 day buckets after restore, got %d", len(days))
	}
	if bucket, ok := days["2026-08-31"].([]interface{}); !ok || len(bucket) != 2 {
		t.Errorf("Expected 2 tasks in 2026-08-31 after restore, got %v", days["2026-08-31"])
	}
}

// TestManager_RestoreLatest tests restoring the most recent backup.
func TestManager_RestoreLatest(t *testing.T) {
	tmpDir := t.TempDir()
	createTestData(t, tmpDir)

	manager := NewManager(tmpDir, "1.0.0")

	// Create first backup
	_, err := manager.Create()
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	// Modify data
	tasks := map[string]interface{}{
		"days": map[string]interface{}{
			"2026-09-02": []map[string]interface{}{
				{"id": "t_modified", "title": "Modified Task", "time": "12:00", "category": "Work", "done": false, "reminded": false},
			},
		},
	}
	writeTestJSON(t, filepath.Join(tmpDir, "tasks.json"), tasks)

	// Create second backup (with modified data)
	time.Sleep(10 * time.Millisecond)
	_, err = manager.Create()
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	// Modify again
	tasks = map[string]interface{}{
		"days": map[string]interface{}{
			"2026-09-03": []map[string]interface{}{
				{"id": "t_final", "title": "Final Task", "time": "13:00", "category": "Home", "done": false, "reminded": false},
			},
		},
	}
	writeTestJSON(t, filepath.Join(tmpDir, "tasks.json"), tasks)

	// Restore latest (should restore the second backup with "Modified Task")
	if err := manager.RestoreLatest(); err != nil {
		t.Fatalf("RestoreLatest() error: %v", err)
	}

	// Verify restoration
	restored := readTestJSON(t, filepath.Join(tmpDir, "tasks.json"))
	days := restored["days"].(map[string]interface{})
	bucket, ok := days["2026-09-02"].([]interface{})
	if !ok || len(bucket) != 1 {
		t.Fatalf("Expected 1 task in 2026-09-02 after restore, got %v", days)
	}

	firstTask := bucket[0].(map[string]interface{})
	if firstTask["id"] != "t_modified" {
		t.Errorf("Expected restored task id 't_modified', got %v", firstTask["id"])
	}
}

// TestManager_RestoreNonexistent tests restoring a nonexistent backup.
func TestManager_RestoreNonexistent(t *testing.T) {
	tmpDir := t.TempDir()
	createTestData(t, tmpDir)

	manager := NewManager(tmpDir, "1.0.0")

	err := manager.Restore("nonexistent-backup")
	if err == nil {
		t.Error("Expected error when restoring nonexistent backup")
	}
}

// TestManager_Delete tests deleting a backup.
func TestManager_Delete(t *testing.T) {
	tmpDir := t.TempDir()
	createTestData(t, tmpDir)

	manager := NewManager(tmpDir, "1.0.0")

	// Create backup
	name, err := manager.Create()
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	// Delete backup
	if err := manager.Delete(name); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}

	// Verify deletion
	backups, _ := manager.List()
	if len(backups) != 0 {
		t.Errorf("Expected 0 backups after delete, got %d", len(backups))
	}
}

// TestManager_Prune tests pruning old backups.
func TestManager_Prune(t *testing.T) {
	tmpDir := t.TempDir()
	createTestData(t, tmpDir)

	manager := NewManager(tmpDir, "1.0.0")

	// Create 5 backups
	for i := 0; i < 5; i++ {
		_, err := manager.Create()
		if err != nil {
			t.Fatalf("Create() error: %v", err)
		}
		time.Sleep(10 * time.Millisecond) // Ensure different timestamps
	}

	// Prune, keeping only 2
	deleted, err := manager.Prune(2)
	if err != nil {
		t.Fatalf("Prune() error: %v", err)
	}

	if deleted != 3 {
		t.Errorf("Expected 3 deleted, got %d", deleted)
	}

	// Verify only 2 remain
	backups, _ := manager.List()
	if len(backups) != 2 {
		t.Errorf("Expected 2 backups after prune, got %d", len(backups))
	}
}

// TestManager_CreateWithEmptyData tests creating a backup with no data files.
func TestManager_CreateWithEmptyData(t *testing.T) {
	tmpDir := t.TempDir()

	// Don't create any data files
	manager := NewManager(tmpDir, "1.0.0")

	// Should still create a backup (with empty file list)
	name, err := manager.Create()
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	// Verify backup was created
	info, err := manager.GetBackup(name)
	if err != nil {
		t.Fatalf("GetBackup() error: %v", err)
	}

	if info.Name != name {
		t.Errorf("Expected backup name %s, got %s", name, info.Name)
	}
}

// TestManager_GetBackup tests getting info about a specific backup.
func TestManager_GetBackup(t *testing.T) {
	tmpDir := t.TempDir()
	createTestData(t, tmpDir)

	manager := NewManager(tmpDir, "1.0.0")

	// Create backup
	name, err := manager.Create()
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	// Get backup info
	info, err := manager.GetBackup(name)
	if err != nil {
		t.Fatalf("GetBackup() error: %v", err)
	}

	if info.Name != name {
		t.Errorf("Expected name %s, got %s", name, info.Name)
	}

	if info.Stats["tasks"] != 3 {
		t.Errorf("Expected 3 tasks, got %d", info.Stats["tasks"])
	}

	// Get nonexistent backup
	_, err = manager.GetBackup("nonexistent")
	if err == nil {
		t.Error("Expected error for nonexistent backup")
	}
}

// TestManager_RestoreCreatesSafetyBackup tests that restore creates a safety backup.
func TestManager_RestoreCreatesSafetyBackup(t *testing.T) {
	tmpDir := t.TempDir()
	createTestData(t, tmpDir)

	manager := NewManager(tmpDir, "1.0.0")

	// Create initial backup
	name, err := manager.Create()
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	// Restore should create a safety backup
	if err := manager.Restore(name); err != nil {
		t.Fatalf("Restore() error: %v", err)
	}

	// Should now have at least 2 backups (including safety backup)
	backups, _ := manager.List()
	if len(backups) < 2 {
		t.Errorf("Expected at least 2 backups (including safety backup), got %d", len(backups))
	}
}
