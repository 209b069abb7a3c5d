package main

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/pthm/hxajax"
)

// Layout renders the full page. The script tag goes last so every
// asynchronous element above it has already marked the scope.
func Layout(store *Store) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<!DOCTYPE html><html><head><title>hxajax todos</title>`+
			`<script src="https://code.jquery.com/jquery-3.7.1.min.js"></script></head><body><h1>Todos</h1>`); err != nil {
			return err
		}
		if err := addForm().Render(ctx, w); err != nil {
			return err
		}
		if err := TodoList(store).Render(ctx, w); err != nil {
			return err
		}
		if err := hxajax.Script().Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</body></html>`)
		return err
	})
}

// AboutPage has no asynchronous elements, so InjectIfNeeded leaves the
// client script off.
func AboutPage() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<!DOCTYPE html><html><body><p>A static page.</p>`); err != nil {
			return err
		}
		if err := hxajax.Script().Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</body></html>`)
		return err
	})
}

// TodoList renders the list fragment, also served alone for async updates.
func TodoList(store *Store) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<ul id="todo-list">`); err != nil {
			return err
		}
		for _, todo := range store.List() {
			if err := todoItem(todo).Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</ul>`)
		return err
	})
}

func todoItem(todo Todo) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		class := "todo"
		if todo.Done {
			class += " done"
		}
		if _, err := io.WriteString(w, `<li class="`+class+`">`+templ.EscapeString(todo.Title)+` `); err != nil {
			return err
		}

		toggle := &hxajax.Options{HTTPMethod: "Post", UpdateTargetID: "todo-list"}
		if err := toggle.SetInsertionMode(hxajax.InsertReplaceWith); err != nil {
			return err
		}
		if err := hxajax.ActionLink("toggle", "/todos/"+todo.ID+"/toggle", toggle, nil).Render(ctx, w); err != nil {
			return err
		}

		remove := &hxajax.Options{
			HTTPMethod:     "Post",
			Confirm:        "Delete '" + todo.Title + "'?",
			UpdateTargetID: "todo-list",
		}
		if err := remove.SetInsertionMode(hxajax.InsertReplaceWith); err != nil {
			return err
		}
		attrs := struct {
			Class string `msgpack:"class"`
		}{Class: "danger"}
		if err := hxajax.ActionLink("delete", "/todos/"+todo.ID+"/delete", remove, attrs).Render(ctx, w); err != nil {
			return err
		}

		_, err := io.WriteString(w, `</li>`)
		return err
	})
}

func addForm() templ.Component {
	opts := &hxajax.Options{
		UpdateTargetID:   "todo-list",
		LoadingElementID: "saving",
		OnSuccess:        "this.reset()",
	}
	_ = opts.SetInsertionMode(hxajax.InsertReplaceWith)

	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<input name="title" placeholder="What needs doing?"><button>Add</button><span id="saving" hidden>Saving…</span>`)
		return err
	})
	return hxajax.BeginForm("/todos", opts, map[string]string{"id": "add-todo"}, body)
}
