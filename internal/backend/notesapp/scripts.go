package notesapp

// JXA sources executed through osascript. Each script reads its parameters
// from argv and prints a single JSON document, which keeps the Go side a
// plain decode with no output scraping.

const listScript = `
function run(argv) {
	const limit = parseInt(argv[0], 10) || 0;
	const folder = argv[1] || "";
	const app = Application("Notes");
	let notes = app.notes;
	if (folder !== "") {
		const matches = app.folders.whose({name: folder});
		if (matches.length === 0) {
			return "[]";
		}
		notes = matches[0].notes;
	}
	const ids = notes.id();
	const names = notes.name();
	const plaintexts = notes.plaintext();
	const max = limit > 0 ? Math.min(limit, ids.length) : ids.length;
	const out = [];
	for (let i = 0; i < max; i++) {
		out.push({id: ids[i], name: names[i], plaintext: plaintexts[i]});
	}
	return JSON.stringify(out);
}`

const getScript = `
function run(argv) {
	const ids = JSON.parse(argv[0]);
	const app = Application("Notes");
	const out = [];
	for (const id of ids) {
		try {
			const n = app.notes.byId(id);
			const rec = {
				id: n.id(),
				name: n.name(),
				body: n.body(),
				plaintext: n.plaintext(),
				passwordProtected: n.passwordProtected()
			};
			try { rec.creationDate = n.creationDate().toISOString(); } catch (e) {}
			try { rec.modificationDate = n.modificationDate().toISOString(); } catch (e) {}
			try { rec.folder = n.container().name(); } catch (e) {}
			try { rec.account = n.container().container().name(); } catch (e) {}
			out.push(rec);
		} catch (e) {
			// missing ids are reported through absence
		}
	}
	return JSON.stringify(out);
}`

const searchScript = `
function run(argv) {
	const query = argv[0];
	const kind = argv[1];
	const folder = argv[2] || "";
	const app = Application("Notes");
	let scope = app.notes;
	if (folder !== "") {
		const matches = app.folders.whose({name: folder});
		if (matches.length === 0) {
			return "[]";
		}
		scope = matches[0].notes;
	}
	const filter = kind === "name" ? {name: {_contains: query}} : {body: {_contains: query}};
	const hits = scope.whose(filter);
	const ids = hits.id();
	const names = hits.name();
	const out = [];
	for (let i = 0; i < ids.length; i++) {
		out.push({id: ids[i], name: names[i]});
	}
	return JSON.stringify(out);
}`

const createScript = `
function run(argv) {
	const title = argv[0];
	const body = argv[1];
	const folder = argv[2] || "";
	const account = argv[3] || "";
	const app = Application("Notes");
	const note = app.Note({name: title, body: body});
	if (folder !== "") {
		app.folders.whose({name: folder})[0].notes.push(note);
	} else if (account !== "") {
		app.accounts.whose({name: account})[0].notes.push(note);
	} else {
		app.defaultAccount.notes.push(note);
	}
	const rec = {
		id: note.id(),
		name: note.name(),
		plaintext: note.plaintext()
	};
	try { rec.creationDate = note.creationDate().toISOString(); } catch (e) {}
	try { rec.folder = note.container().name(); } catch (e) {}
	try { rec.account = note.container().container().name(); } catch (e) {}
	return JSON.stringify(rec);
}`

const foldersScript = `
function run() {
	const app = Application("Notes");
	return JSON.stringify(app.folders.name());
}`
