package http

import "net/http"

// AdminHandler serves the minimal admin pages behind the admission gate.
// The pages are deliberately bare; the portfolio front-end is rendered
// elsewhere and talks to the JSON API.
type AdminHandler struct{}

const loginPage = `<!DOCTYPE html>
<html>
<head><title>Admin Login</title></head>
<body>
<h1>Admin Login</h1>
<form id="login">
<input name="username" placeholder="Username" autocomplete="username">
<input name="password" type="password" placeholder="Password" autocomplete="current-password">
<button type="submit">Sign in</button>
</form>
<script>
document.getElementById('login').addEventListener('submit', async (e) => {
	e.preventDefault();
	const data = Object.fromEntries(new FormData(e.target));
	const res = await fetch('/api/auth/login', {
		method: 'POST',
		headers: {'Content-Type': 'application/json'},
		body: JSON.stringify(data),
	});
	if (res.ok) { window.location = '/admin/dashboard'; }
});
</script>
</body>
</html>`

const dashboardPage = `<!DOCTYPE html>
<html>
<head><title>Admin Dashboard</title></head>
<body>
<h1>Dashboard</h1>
<p>Manage categories and photos through the JSON API.</p>
</body>
</html>`

// LoginPage renders the admin login form.
func (h *AdminHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(loginPage))
}

// Dashboard renders the admin dashboard.
func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(dashboardPage))
}
