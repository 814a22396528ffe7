package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"fstlex/internal/registry"
	"fstlex/internal/source"
	"fstlex/internal/token"
)

// FileResult содержит результат токенизации одного файла
type FileResult struct {
	Path   string        // Относительный путь к файлу
	FileID source.FileID // ID файла в FileSet
	Tokens []token.Token // Токены файла, включая EOF
	Cached bool          // Поток взят из кэша
	Err    error         // Ошибка загрузки (Tokens == nil)
}

// ListSourceFiles возвращает отсортированный список файлов в dir,
// чьё имя совпадает с глобом хотя бы одного зарегистрированного лексера.
func ListSourceFiles(dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && len(registry.Match(path)) > 0 {
			files = append(files, path)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	// Сортируем для детерминированного порядка
	sort.Strings(files)
	return files, nil
}

// TokenizeDir токенизирует все подходящие файлы в директории параллельно.
// Ошибка загрузки одного файла попадает в его FileResult и не валит остальные.
func TokenizeDir(ctx context.Context, dir string, cfg *registry.Config, jobs int, cache *TokenCache) (*source.FileSet, []FileResult, error) {
	// Собираем список файлов
	files, err := ListSourceFiles(dir)
	if err != nil {
		return nil, nil, err
	}

	if len(files) == 0 {
		return source.NewFileSetWithBase(dir), nil, nil
	}

	// Создаём FileSet и предзагружаем все файлы: FileSet не рассчитан на
	// конкурентный Add, а чтение после загрузки — да.
	fileSet := source.NewFileSetWithBase(dir)
	fileIDs := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error, len(files))

	for _, path := range files {
		fileID, err := fileSet.Load(path)
		if err != nil {
			loadErrors[path] = err
			continue
		}
		fileIDs[path] = fileID
	}

	// Настраиваем параллелизм
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Результаты (индексы уникальны для каждой горутины, мьютекс не нужен)
	results := make([]FileResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		g.Go(func(i int, path string) func() error {
			return func() error {
				// Проверка отмены
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}

				if loadErr, hadError := loadErrors[path]; hadError {
					results[i] = FileResult{Path: path, Err: loadErr}
					return nil
				}

				fileID := fileIDs[path]
				file := fileSet.Get(fileID)

				if tokens, ok := cache.Get(file, cfg.Name); ok {
					results[i] = FileResult{Path: path, FileID: fileID, Tokens: tokens, Cached: true}
					return nil
				}

				tokens := Scan(file, cfg)
				_ = cache.Put(file, cfg.Name, tokens)

				// Сохраняем результат (мьютекс не нужен — индекс i уникален)
				results[i] = FileResult{Path: path, FileID: fileID, Tokens: tokens}

				return nil
			}
		}(i, path))
	}

	// Ждём завершения всех горутин
	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}

	return fileSet, results, nil
}
